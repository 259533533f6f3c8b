package accounts

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const fileHeader = `# Account filter.
# Set an account to true to include its transactions, false to exclude them.
# Transfers to or from any account listed here are never reported, whatever
# its flag. Accounts missing from this file are excluded.
`

// ReadFilter decodes a YAML mapping of account name to boolean.
// An empty document yields an empty Filter.
func ReadFilter(r io.Reader) (Filter, error) {
	var entries map[string]bool
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil && err != io.EOF {
		return Filter{}, fmt.Errorf("decoding account filter: %w", err)
	}
	return NewFilter(entries), nil
}

// WriteFilter encodes f as YAML with an explanatory header.
func WriteFilter(w io.Writer, f Filter) error {
	if _, err := io.WriteString(w, fileHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if f.Len() == 0 {
		_, err := io.WriteString(w, "{}\n")
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.Entries()); err != nil {
		return fmt.Errorf("encoding account filter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding account filter: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Load reads an account filter file.
func Load(path string) (Filter, error) {
	f, err := os.Open(path)
	if err != nil {
		return Filter{}, fmt.Errorf("opening account filter: %w", err)
	}
	defer f.Close()

	filter, err := ReadFilter(f)
	if err != nil {
		return Filter{}, fmt.Errorf("reading account filter %s: %w", path, err)
	}
	return filter, nil
}

// Save writes an account filter file, replacing any existing one.
func Save(path string, filter Filter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating account filter file: %w", err)
	}
	defer f.Close()

	if err := WriteFilter(f, filter); err != nil {
		return fmt.Errorf("writing account filter: %w", err)
	}
	return nil
}
