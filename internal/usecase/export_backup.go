package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/willflow/internal/domain"
)

// ExportBackupInput contains the parameters for exporting a backup.
type ExportBackupInput struct {
	Out    io.Writer // When set, the document is written here instead of a file
	Dir    string    // Target directory for the dated file
	Format string    // domain.BackupJSON or domain.BackupYAML
}

// ExportBackupOutput contains where the backup went.
type ExportBackupOutput struct {
	Path  string // Empty when written to Out
	Bytes int
}

// ExportBackup serializes the whole snapshot.
type ExportBackup struct {
	repo   domain.StateRepository
	codec  domain.BackupCodec
	clock  domain.Clock
	logger domain.Logger
}

// NewExportBackup creates a new ExportBackup use case.
func NewExportBackup(repo domain.StateRepository, codec domain.BackupCodec, clock domain.Clock, logger domain.Logger) *ExportBackup {
	return &ExportBackup{repo: repo, codec: codec, clock: clock, logger: logger}
}

// Execute writes willpower-backup-<date>.<ext> into Dir, or the document to Out.
func (uc *ExportBackup) Execute(_ context.Context, in ExportBackupInput) (*ExportBackupOutput, error) {
	format := in.Format
	if format == "" {
		format = domain.BackupJSON
	}
	if format != domain.BackupJSON && format != domain.BackupYAML {
		return nil, fmt.Errorf("unknown backup format: %s", format)
	}

	res, err := uc.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	content, err := uc.codec.Encode(res.State, format)
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}

	if in.Out != nil {
		n, err := in.Out.Write(content)
		if err != nil {
			return nil, fmt.Errorf("write backup: %w", err)
		}
		return &ExportBackupOutput{Bytes: n}, nil
	}

	dir := in.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}
	path := filepath.Join(dir, domain.BackupFileName(uc.clock.Now(), format))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return nil, fmt.Errorf("write backup: %w", err)
	}

	uc.logger.Info("backup", fmt.Sprintf("exported %s (%d bytes)", path, len(content)))
	return &ExportBackupOutput{Path: path, Bytes: len(content)}, nil
}
