// Package diffparse turns unified diff text into an ordered sequence of
// file-change records.
//
// It tolerates the header variants real diff tools emit — added/deleted
// file mode lines, rename and copy headers, binary markers, and the
// absent-newline marker — without treating any of them as errors. The
// engine downstream consults hunks only to derive line ranges; once a
// file's [FileChange] is built, it is otherwise treated holistically.
package diffparse
