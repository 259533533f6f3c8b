// Package render hands a flow graph to its consumers: an HTML Sankey chart,
// a JSON document, or the plain-text summary printed for the operator.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/ynabflow/internal/model"
)

// ErrUnsupportedFormat is returned by WriteFile for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Report is everything a renderer needs.
type Report struct {
	Title   string
	Source  string // register file name, shown in the footer
	GroupBy model.GroupBy
	Graph   model.FlowGraph
	Stats   model.RunStatistics
}

// Renderer writes a Report in one format.
type Renderer func(w io.Writer, r Report) error

// ForPath picks a renderer from the output file extension.
func ForPath(path string) (Renderer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTML, nil
	case ".json":
		return JSON, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// WriteFile renders r to path in the format implied by its extension.
func WriteFile(path string, r Report) error {
	renderer, err := ForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer f.Close()

	if err := renderer(f, r); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}

const dataThroughFormat = "2006-01-02"

func dataThrough(s model.RunStatistics) string {
	if s.LatestDate.IsZero() {
		return "n/a"
	}
	return s.LatestDate.Format(dataThroughFormat)
}
