package output

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/warden/internal/runner"
)

// SARIFWriter outputs reports in SARIF v2.1.0 format, so a governance
// signal can be surfaced in the same CI security-scanning UI as static
// analysis findings.
type SARIFWriter struct{}

func (s *SARIFWriter) Write(w io.Writer, result *runner.Result) error {
	sarif := buildSARIF(result)
	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling SARIF: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing SARIF: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
	DefaultConfig    sarifLevel   `json:"defaultConfiguration"`
}

type sarifLevel struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

func buildSARIF(result *runner.Result) sarifLog {
	rulesSeen := make(map[string]bool)
	var rules []sarifRule
	var results []sarifResult

	for _, r := range result.Reports {
		ruleID := ruleIDFor(r.FileName)
		if !rulesSeen[ruleID] {
			rulesSeen[ruleID] = true
			rules = append(rules, sarifRule{
				ID:               ruleID,
				ShortDescription: sarifMessage{Text: "change-governance signal for " + r.FileName},
				DefaultConfig:    sarifLevel{Level: "warning"},
			})
		}

		sr := sarifResult{
			RuleID:  ruleID,
			Level:   "warning",
			Message: sarifMessage{Text: r.Message},
		}
		if r.LineRange != nil {
			sr.Locations = []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: r.FileName},
					Region: sarifRegion{
						StartLine: r.LineRange.Start,
						EndLine:   r.LineRange.End,
					},
				},
			}}
		}
		results = append(results, sr)
	}

	return sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "warden",
						InformationURI: "https://github.com/dshills/warden",
						Rules:          rules,
					},
				},
				Results: results,
			},
		},
	}
}

func ruleIDFor(fileName string) string {
	h := sha256.Sum256([]byte(fileName))
	return fmt.Sprintf("warden/%x", h[:4])
}
