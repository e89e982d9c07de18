package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/warden/internal/report"
	"github.com/dshills/warden/internal/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Reports: []report.Output{
			{
				Content:  "version bumped",
				FileName: "package.json",
				DiffText: "-\"1.0.0\"\n+\"2.0.0\"\n",
				Message:  "version bumped",
				LineRange: &report.LineRange{Start: 1, End: 1},
			},
		},
		Concerns: map[string]map[string]string{
			"versioning": {"lastBump": "2.0.0"},
		},
	}
}

func TestTextWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "package.json") {
		t.Fatalf("output missing file name: %q", out)
	}
	if !strings.Contains(out, "versioning.lastBump = 2.0.0") {
		t.Fatalf("output missing concern context: %q", out)
	}
}

func TestJSONWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded runner.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Reports) != 1 || decoded.Reports[0].FileName != "package.json" {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestMarkdownWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "<summary>package.json</summary>") {
		t.Fatalf("output missing collapsible section: %q", buf.String())
	}
}

func TestSARIFWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := (&SARIFWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["version"] != "2.1.0" {
		t.Fatalf("version = %v, want 2.1.0", decoded["version"])
	}
}

func TestGetWriter_UnsupportedFormat(t *testing.T) {
	if _, err := GetWriter("yaml"); err == nil {
		t.Fatal("GetWriter: want error for unsupported format")
	}
}
