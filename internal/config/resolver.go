package config

import (
	"regexp"

	"github.com/dshills/warden/internal/wverrors"
)

var refRe = regexp.MustCompile(`^#defined/(signals|watches|reports)/(.+)$`)

// parseRefShape validates a "#defined/<kind>/<name>" string's syntax
// and splits it into kind and name, without checking that name exists.
func parseRefShape(ref string) (kind, name string, err error) {
	m := refRe.FindStringSubmatch(ref)
	if m == nil {
		return "", "", &wverrors.ConfigError{Detail: "Invalid reference format"}
	}
	return m[1], m[2], nil
}

// ResolveWatch resolves a WatchRef against the defined block, either
// returning its inline value or looking up its reference by name.
func ResolveWatch(ref WatchRef, defined DefinedBlock, signalID string) (Watch, error) {
	if ref.Use == "" {
		if ref.Watch == nil {
			return Watch{}, &wverrors.ConfigError{SignalID: signalID, Detail: "watch is empty"}
		}
		return *ref.Watch, nil
	}
	kind, name, err := parseRefShape(ref.Use)
	if err != nil {
		return Watch{}, wrapSignal(err, signalID)
	}
	if kind != "watches" {
		return Watch{}, &wverrors.ConfigError{
			SignalID: signalID,
			Detail:   "Expected a watches reference, got " + kind,
		}
	}
	w, ok := defined.Watches[name]
	if !ok {
		return Watch{}, &wverrors.ConfigError{
			SignalID: signalID,
			Detail:   "watches '" + name + "' not found",
		}
	}
	return w, nil
}

// ResolveReport resolves a ReportRef against the defined block.
func ResolveReport(ref ReportRef, defined DefinedBlock, signalID string) (Report, error) {
	if ref.Use == "" {
		if ref.Report == nil {
			return Report{}, &wverrors.ConfigError{SignalID: signalID, Detail: "report is empty"}
		}
		return *ref.Report, nil
	}
	kind, name, err := parseRefShape(ref.Use)
	if err != nil {
		return Report{}, wrapSignal(err, signalID)
	}
	if kind != "reports" {
		return Report{}, &wverrors.ConfigError{
			SignalID: signalID,
			Detail:   "Expected a reports reference, got " + kind,
		}
	}
	r, ok := defined.Reports[name]
	if !ok {
		return Report{}, &wverrors.ConfigError{
			SignalID: signalID,
			Detail:   "reports '" + name + "' not found",
		}
	}
	return r, nil
}

// ResolveSignal resolves a SignalRef against the defined block.
func ResolveSignal(ref SignalRef, defined DefinedBlock, path string) (Signal, error) {
	if ref.Use == "" {
		if ref.Signal == nil {
			return Signal{}, &wverrors.ConfigError{SignalID: path, Detail: "signal is empty"}
		}
		return *ref.Signal, nil
	}
	kind, name, err := parseRefShape(ref.Use)
	if err != nil {
		return Signal{}, wrapSignal(err, path)
	}
	if kind != "signals" {
		return Signal{}, &wverrors.ConfigError{
			SignalID: path,
			Detail:   "Expected a signals reference, got " + kind,
		}
	}
	s, ok := defined.Signals[name]
	if !ok {
		return Signal{}, &wverrors.ConfigError{
			SignalID: path,
			Detail:   "signals '" + name + "' not found",
		}
	}
	return s, nil
}

func wrapSignal(err error, signalID string) error {
	if ce, ok := err.(*wverrors.ConfigError); ok && ce.SignalID == "" {
		ce.SignalID = signalID
		return ce
	}
	return err
}
