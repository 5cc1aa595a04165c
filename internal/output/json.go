package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/HarshitR2004/GenCoder/internal/catalog"
	"github.com/HarshitR2004/GenCoder/internal/check"
)

// Version is reported in JSON headers.
var Version = "dev"

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	w      io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{w: w, indent: indent}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header JSONHeader `json:"header"`
	*check.Result
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func newHeader() JSONHeader {
	return JSONHeader{Tool: "gencoder", Version: Version, Timestamp: time.Now().Format(time.RFC3339)}
}

// Format writes the batch result with a header.
func (f *JSONFormatter) Format(res *check.Result) error {
	return f.write(JSONReport{Header: newHeader(), Result: res})
}

// FormatRecommendation writes rec as JSON.
func (f *JSONFormatter) FormatRecommendation(rec Recommendation) error {
	return f.write(rec)
}

// FormatCompatibility writes rep as JSON.
func (f *JSONFormatter) FormatCompatibility(rep Compatibility) error {
	return f.write(rep)
}

// FormatTypes writes the catalog as JSON.
func (f *JSONFormatter) FormatTypes(descriptors []catalog.Descriptor) error {
	return f.write(descriptors)
}

func (f *JSONFormatter) write(v any) error {
	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if _, err := fmt.Fprintln(f.w, string(data)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}
