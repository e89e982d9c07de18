package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type rawConcern struct {
	Signals      []SignalRef    `yaml:"signals"`
	Stakeholders map[string]any `yaml:"stakeholders,omitempty"`
}

// Load reads and parses a configuration file from disk.
func Load(path string) (Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Root{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes configuration YAML into a Root, preserving concern
// declaration order, and validates that every reference is at least
// well-formed (full resolution against Defined happens lazily, at
// runner use-time, per the reference-resolution contract).
func Parse(data []byte) (Root, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Root{}, fmt.Errorf("parsing config YAML: %w", err)
	}
	if len(doc.Content) == 0 {
		return Root{}, nil
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return Root{}, fmt.Errorf("config root must be a mapping")
	}

	var root Root
	for i := 0; i+1 < len(top.Content); i += 2 {
		key := top.Content[i].Value
		val := top.Content[i+1]
		switch key {
		case "concerns":
			concerns, err := decodeConcerns(val)
			if err != nil {
				return Root{}, err
			}
			root.Concerns = concerns
		case "defined":
			var defined DefinedBlock
			if err := val.Decode(&defined); err != nil {
				return Root{}, fmt.Errorf("parsing defined block: %w", err)
			}
			root.Defined = defined
		}
	}

	if err := validateReferenceShapes(root); err != nil {
		return Root{}, err
	}

	return root, nil
}

func decodeConcerns(val *yaml.Node) ([]Concern, error) {
	if val.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("\"concerns\" must be a mapping")
	}
	var concerns []Concern
	for i := 0; i+1 < len(val.Content); i += 2 {
		id := val.Content[i].Value
		var rc rawConcern
		if err := val.Content[i+1].Decode(&rc); err != nil {
			return nil, fmt.Errorf("concern %q: %w", id, err)
		}
		concerns = append(concerns, Concern{
			ID:           id,
			Signals:      rc.Signals,
			Stakeholders: rc.Stakeholders,
		})
	}
	return concerns, nil
}

// validateReferenceShapes checks that every "use:" string in the
// document is syntactically well-formed. It does not check that the
// name resolves — that's deferred to the runner, which runs lazily
// per-signal — only that malformed reference strings fail the whole
// load, per "every reference resolves; unresolved references fail
// loading" for the statically-checkable case.
func validateReferenceShapes(root Root) error {
	check := func(use string) error {
		if use == "" {
			return nil
		}
		if _, _, err := parseRefShape(use); err != nil {
			return err
		}
		return nil
	}
	for _, c := range root.Concerns {
		for _, s := range c.Signals {
			if err := check(s.Use); err != nil {
				return fmt.Errorf("concern %q: %w", c.ID, err)
			}
			if s.Signal != nil {
				if err := check(s.Signal.Watch.Use); err != nil {
					return err
				}
				if err := check(s.Signal.Report.Use); err != nil {
					return err
				}
			}
		}
	}
	for name, s := range root.Defined.Signals {
		if err := check(s.Watch.Use); err != nil {
			return fmt.Errorf("defined signal %q: %w", name, err)
		}
		if err := check(s.Report.Use); err != nil {
			return fmt.Errorf("defined signal %q: %w", name, err)
		}
	}
	return nil
}
