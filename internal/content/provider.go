package content

import "context"

// WorkingTree is the sentinel revision meaning "the working directory"
// for filesystem-backed providers.
const WorkingTree = "."

// Index is the sentinel revision meaning "the staged index" for
// filesystem-backed providers that support reading staged content.
const Index = ":"

// Provider retrieves file content at a given revision. A nil, nil
// return means the file does not exist at that revision — never an
// error. Only I/O or authorization failures should be returned as err.
type Provider interface {
	Fetch(ctx context.Context, revision, path string) (*string, error)
}

// Versions is a pair of file contents, either side of which may be
// absent (add/delete). Both sides absent is always a no-op for watches.
type Versions struct {
	Old *string
	New *string
}

// Fetch materializes the versions of path needed for a change of the
// given kind: old content is skipped for adds, new content is skipped
// for deletes, matching the runner's materialization rule.
func Fetch(ctx context.Context, p Provider, baseRef, headRef, oldPath, newPath string, needOld, needNew bool) (Versions, error) {
	var v Versions
	if needOld && oldPath != "" {
		old, err := p.Fetch(ctx, baseRef, oldPath)
		if err != nil {
			return Versions{}, err
		}
		v.Old = old
	}
	if needNew && newPath != "" {
		newContent, err := p.Fetch(ctx, headRef, newPath)
		if err != nil {
			return Versions{}, err
		}
		v.New = newContent
	}
	return v, nil
}
