package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/warden/internal/runner"
)

// JSONWriter outputs the full {reports, concerns, failures} structure as JSON,
// matching §6's Output contract.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *runner.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
