package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/willflow/internal/domain"
)

// ImportBackupInput contains a backup document to restore.
type ImportBackupInput struct {
	Format  string // domain.BackupJSON or domain.BackupYAML
	Content []byte
}

// ImportBackupOutput summarizes the restored snapshot.
type ImportBackupOutput struct {
	State *domain.AppState
}

// ImportBackup replaces the whole snapshot with a backup document.
type ImportBackup struct {
	repo   domain.StateRepository
	codec  domain.BackupCodec
	clock  domain.Clock
	logger domain.Logger
}

// NewImportBackup creates a new ImportBackup use case.
func NewImportBackup(repo domain.StateRepository, codec domain.BackupCodec, clock domain.Clock, logger domain.Logger) *ImportBackup {
	return &ImportBackup{repo: repo, codec: codec, clock: clock, logger: logger}
}

// Execute validates the document and saves it. A rejected document
// leaves the stored snapshot untouched and returns a *domain.ImportError.
func (uc *ImportBackup) Execute(_ context.Context, in ImportBackupInput) (*ImportBackupOutput, error) {
	today := domain.FormatDate(uc.clock.Now())
	state, err := uc.codec.Decode(in.Content, in.Format, today)
	if err != nil {
		uc.logger.Warn("backup", fmt.Sprintf("import rejected: %v", err))
		return nil, err
	}
	if err := uc.repo.Save(state); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	uc.logger.Info("backup", fmt.Sprintf("imported snapshot with %d history records", len(state.History)))
	return &ImportBackupOutput{State: state}, nil
}
