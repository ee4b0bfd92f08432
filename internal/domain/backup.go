package domain

import (
	"fmt"
	"time"
)

// Backup formats.
const (
	BackupJSON = "json"
	BackupYAML = "yaml"
)

// BackupFileName returns the export file name for the given day.
func BackupFileName(now time.Time, format string) string {
	ext := BackupJSON
	if format == BackupYAML {
		ext = BackupYAML
	}
	return fmt.Sprintf("willpower-backup-%s.%s", FormatDate(now), ext)
}

// ValidateBackup checks the minimum shape of a decoded backup document:
// an object with a numeric baseMax and history and templates lists.
func ValidateBackup(doc any) error {
	m, ok := doc.(map[string]any)
	if !ok {
		return &ImportError{Reason: "document must be an object"}
	}
	switch v := m["baseMax"].(type) {
	case float64, int, int64, uint64:
	case nil:
		return &ImportError{Reason: `missing numeric field "baseMax"`}
	default:
		return &ImportError{Reason: fmt.Sprintf(`field "baseMax" must be a number, got %T`, v)}
	}
	for _, key := range []string{"history", "templates"} {
		v, present := m[key]
		if !present {
			return &ImportError{Reason: fmt.Sprintf("missing list field %q", key)}
		}
		if _, ok := v.([]any); !ok {
			return &ImportError{Reason: fmt.Sprintf("field %q must be a list", key)}
		}
	}
	return nil
}
