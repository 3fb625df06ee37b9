// Package export writes transactions to tabular files and reads them back.
package export

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// Exporter serializes transactions in one file format.
type Exporter interface {
	Export(w io.Writer, txns []model.Transaction) error
	Format() string
	Extension() string
}

// Registry holds named exporters.
type Registry struct {
	exporters map[string]Exporter
}

// NewRegistry creates an empty exporter registry.
func NewRegistry() *Registry {
	return &Registry{exporters: make(map[string]Exporter)}
}

// Register adds an exporter. Panics on duplicate format.
func (r *Registry) Register(e Exporter) {
	key := strings.ToLower(e.Format())
	if _, ok := r.exporters[key]; ok {
		panic("duplicate export format: " + key)
	}
	r.exporters[key] = e
}

// Get returns the exporter for format, or nil.
func (r *Registry) Get(format string) Exporter {
	return r.exporters[strings.ToLower(format)]
}

// Formats lists registered format names, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.exporters))
	for k := range r.exporters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultRegistry returns a registry with all built-in exporters.
func DefaultRegistry(dateFormat string) *Registry {
	r := NewRegistry()
	r.Register(&CSVExporter{DateFormat: dateFormat})
	r.Register(&XLSXExporter{DateFormat: dateFormat})
	return r
}

// OutputPath swaps the extension of input for ext: "permata_aug_2025.pdf"
// becomes "permata_aug_2025.csv".
func OutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + strings.TrimPrefix(ext, ".")
}
