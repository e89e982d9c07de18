package watch

import "context"

// Extractor is the contract every watch kind's kind-specific logic
// satisfies. Run invokes it once per side of a file-version pair.
type Extractor interface {
	// Extract runs the extractor against one version's content. Absent
	// content is represented as an empty string by the caller, per the
	// shared scaffold's contract — extractors never see a nil.
	Extract(ctx context.Context, content, path string) (Extracted, error)

	// ProducesLineRange reports whether this extractor's output is
	// line-structured enough that a lineRange derived from the artifact
	// diff is meaningful. jq's transformation output is not (spec
	// §4.3.1): line numbers in a transformed value would mislead.
	ProducesLineRange() bool
}
