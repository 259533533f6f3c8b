package register

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cleared-dev/ynabflow/internal/model"
)

// Parser converts a register export into TransactionRecords.
type Parser interface {
	Parse(r io.Reader) ([]model.TransactionRecord, error)
	Format() string
}

// ErrUnknownFormat is returned by Lookup for a format no parser handles.
var ErrUnknownFormat = errors.New("unknown register format")

// Registry maps register export formats to their parsers. Format names are
// case-insensitive.
type Registry struct {
	byFormat map[string]Parser
}

// NewRegistry returns a registry with no formats.
func NewRegistry() *Registry {
	return &Registry{byFormat: make(map[string]Parser)}
}

// Register adds p under p.Format(). A format can be registered once.
func (r *Registry) Register(p Parser) {
	format := strings.ToLower(p.Format())
	if _, dup := r.byFormat[format]; dup {
		panic(fmt.Sprintf("register: format %q registered twice", format))
	}
	r.byFormat[format] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.byFormat[strings.ToLower(format)]
}

// Lookup is Get with an error naming the supported formats.
func (r *Registry) Lookup(format string) (Parser, error) {
	if p := r.Get(format); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, format, strings.Join(r.Formats(), ", "))
}

// Formats lists the registered format names, sorted.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// DefaultRegistry knows every built-in export format.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&YNABParser{})
	return r
}

// ReadFile opens path and parses it with p.
func ReadFile(p Parser, path string) ([]model.TransactionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening register: %w", err)
	}
	defer f.Close()

	records, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading register %s: %w", path, err)
	}
	return records, nil
}
