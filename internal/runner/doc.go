// Package runner implements the processing runner: it walks files (in
// diff order) crossed with concerns (declared order) crossed with
// signals (declared order within a concern), resolving each signal's
// watch and report, materializing file versions from a
// content.Provider, and collecting the resulting report outputs in
// that traversal order regardless of how much of the work actually
// ran concurrently.
package runner
