// Package watchtype holds types shared between the watch package and
// its kind-specific extractor subpackages. It exists only to break the
// import cycle that would otherwise result from the watch package
// importing each extractor subpackage (to dispatch on watch kind)
// while those subpackages import watch's shared Extracted type.
package watchtype

// Extracted is one side's extractor output.
type Extracted struct {
	Text    string
	Context []map[string]string
}
