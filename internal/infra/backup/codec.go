// Package backup encodes and decodes whole-snapshot backup documents in
// JSON or YAML.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/infra/jsonstore"
)

// FormatFromPath guesses the document format from a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return domain.BackupYAML
	default:
		return domain.BackupJSON
	}
}

// Encode serializes the snapshot verbatim. YAML output carries the same
// keys in the same order as the JSON document.
func Encode(state *domain.AppState, format string) ([]byte, error) {
	content, err := jsonstore.Encode(state)
	if err != nil {
		return nil, err
	}
	if format != domain.BackupYAML {
		return append(content, '\n'), nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, fmt.Errorf("convert backup to yaml: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml backup: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml backup: %w", err)
	}
	return buf.Bytes(), nil
}

// blockStyle drops the flow and quoting styles inherited from JSON.
// Strings that would read as another type are still quoted by the encoder.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Decode validates a backup document and turns it into a snapshot merged
// over the defaults, exactly as a stored snapshot is loaded.
// Every failure is a *domain.ImportError.
func Decode(content []byte, format string, today string) (*domain.AppState, error) {
	var doc any
	var err error
	if format == domain.BackupYAML {
		err = yaml.Unmarshal(content, &doc)
	} else {
		err = json.Unmarshal(content, &doc)
	}
	if err != nil {
		return nil, &domain.ImportError{Reason: fmt.Sprintf("not a %s document: %v", format, err)}
	}

	if err := domain.ValidateBackup(doc); err != nil {
		return nil, err
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, &domain.ImportError{Reason: err.Error()}
	}
	state, err := jsonstore.Decode(normalized, today)
	if err != nil {
		return nil, &domain.ImportError{Reason: err.Error()}
	}
	return state, nil
}

// Codec adapts Encode and Decode to domain.BackupCodec.
type Codec struct{}

// Encode implements domain.BackupCodec.
func (Codec) Encode(state *domain.AppState, format string) ([]byte, error) {
	return Encode(state, format)
}

// Decode implements domain.BackupCodec.
func (Codec) Decode(content []byte, format, today string) (*domain.AppState, error) {
	return Decode(content, format, today)
}

var _ domain.BackupCodec = Codec{}
