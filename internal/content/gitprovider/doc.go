// Package gitprovider implements content.Provider by shelling out to a
// local git checkout.
//
// The working tree is read directly from disk when the revision is
// content.WorkingTree ("." or empty); any other revision is resolved
// via "git show <rev>:<path>". A missing blob or path is reported as
// absence, matching the ContentProvider contract — every other
// non-zero git exit is surfaced as an error.
package gitprovider
