// Package config defines warden's configuration schema — concerns,
// signals, watches, and reports — and resolves "use:" references into
// the shared "defined" block.
//
// The schema is a closed set of tagged unions (watch kind, report
// kind) rather than an open/polymorphic object model: adding a new
// watch kind is a compile-time exhaustiveness obligation in every
// dispatcher, not a runtime registration. References take the form
// "#defined/<kind>/<name>" and are resolved lazily, at the point the
// runner actually uses a signal — an unreferenced defined entry is
// valid and never an error.
//
// Use [Load] to read and validate a YAML configuration file, and
// [ResolveSignal], [ResolveWatch] and [ResolveReport] to look up a
// "use:" reference against a loaded [DefinedBlock].
package config
