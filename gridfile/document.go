package gridfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is wrapped by every error describing a malformed
// document.
var ErrInvalidDocument = errors.New("invalid layout document")

// Document is one grid.
type Document struct {
	Name        string `yaml:"name,omitempty"`
	Orientation string `yaml:"orientation"`
	Items       []Item `yaml:"items"`
}

// Item is one entry of a document's item list.
type Item struct {
	Name       string    `yaml:"name,omitempty"`
	Sizing     string    `yaml:"sizing"`
	Value      float64   `yaml:"value,omitempty"`
	Horizontal string    `yaml:"horizontal,omitempty"`
	Vertical   string    `yaml:"vertical,omitempty"`
	Margin     []float64 `yaml:"margin,omitempty,flow"`
	Min        *float64  `yaml:"min,omitempty"`
	Max        *float64  `yaml:"max,omitempty"`
	Collapse   bool      `yaml:"collapse,omitempty"`

	Text *string   `yaml:"text,omitempty"`
	Size []float64 `yaml:"size,omitempty,flow"`
	Grid *Document `yaml:"grid,omitempty"`
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening layout: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Marshal encodes d as YAML.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encoding layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding layout: %w", err)
	}
	return buf.Bytes(), nil
}
