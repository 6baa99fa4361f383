package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	documentVersionV1 = "1"
	// DocumentVersion exposes the current model document version for tooling.
	DocumentVersion = documentVersionV1
)

// ModelDocument is the YAML/JSON envelope around a DashboardModel.
type ModelDocument struct {
	Version string         `json:"version" yaml:"version"`
	Model   DashboardModel `json:"dashboard" yaml:"dashboard"`
	Source  string         `json:"-" yaml:"-"`
}

// ReadModelFile loads and validates a model document from disk.
func ReadModelFile(path string) (*ModelDocument, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("dashboard: open model %s: %w", path, err)
	}
	doc, err := DecodeModel(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("dashboard: decode model %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeModel reads a model document: it is checked against the document
// schema, decoded with unknown fields rejected, then validated.
func DecodeModel(r io.Reader) (*ModelDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dashboard: read model: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("dashboard: model document is empty")
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("dashboard: parse model: %w", err)
	}
	if err := defaultDocumentValidator.Validate(raw); err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var doc ModelDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("dashboard: parse model: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeModel writes a model document as YAML.
func EncodeModel(w io.Writer, model DashboardModel) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(ModelDocument{Version: DocumentVersion, Model: model}); err != nil {
		return fmt.Errorf("dashboard: encode model: %w", err)
	}
	return encoder.Close()
}

// Validate checks the version and the model invariants.
func (doc *ModelDocument) Validate() error {
	if doc.Version != documentVersionV1 {
		return fmt.Errorf("dashboard: unsupported model document version %q", doc.Version)
	}
	return Validate(doc.Model)
}

func (doc *ModelDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = documentVersionV1
	}
}
