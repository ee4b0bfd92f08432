// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/runoshun/willflow/internal/domain"
	"github.com/runoshun/willflow/internal/infra/backup"
	"github.com/runoshun/willflow/internal/infra/config"
	"github.com/runoshun/willflow/internal/infra/idgen"
	"github.com/runoshun/willflow/internal/infra/jsonstore"
	"github.com/runoshun/willflow/internal/infra/logging"
	"github.com/runoshun/willflow/internal/usecase"
)

// HomeEnv overrides the data directory.
const HomeEnv = "WILLFLOW_HOME"

// Config holds the application paths.
type Config struct {
	DataDir   string // Directory holding state, local config and logs
	StorePath string // Snapshot file
}

// DataDir returns the data directory: $WILLFLOW_HOME, or ~/.willflow.
func DataDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return homedir.Expand(dir)
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, domain.DataDirName), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	State         domain.StateRepository
	IDs           domain.IDGenerator
	Clock         domain.Clock
	Logger        domain.Logger
	Backup        domain.BackupCodec
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container rooted at dataDir.
func New(dataDir string) (*Container, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))
	for _, w := range appConfig.Warnings {
		logger.Warn("config", w)
	}

	cfg := Config{
		DataDir:   dataDir,
		StorePath: appConfig.Store.Path,
	}
	if cfg.StorePath == "" {
		cfg.StorePath = domain.StatePath(dataDir)
	}

	clock := domain.RealClock{}
	return &Container{
		State:         jsonstore.New(cfg.StorePath, clock, logger),
		IDs:           idgen.UUID{},
		Clock:         clock,
		Logger:        logger,
		Backup:        backup.Codec{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dataDir),
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, state domain.StateRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		State:     state,
		IDs:       ids,
		Clock:     clock,
		Logger:    logger,
		Backup:    backup.Codec{},
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

func (c *Container) ports() usecase.StatePorts {
	return usecase.StatePorts{Repo: c.State, IDs: c.IDs, Clock: c.Clock, Logger: c.Logger}
}

// UseCase factory methods

// ShowTodayUseCase returns a new ShowToday use case.
func (c *Container) ShowTodayUseCase() *usecase.ShowToday {
	return usecase.NewShowToday(c.State, c.IDs, c.Clock, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.ports(), c.AppConfig.Budget.HomeCost)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.ports())
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.ports())
}

// DeferTaskUseCase returns a new DeferTask use case.
func (c *Container) DeferTaskUseCase() *usecase.DeferTask {
	return usecase.NewDeferTask(c.ports())
}

// FillRemainingUseCase returns a new FillRemaining use case.
func (c *Container) FillRemainingUseCase() *usecase.FillRemaining {
	return usecase.NewFillRemaining(c.ports())
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.ports())
}

// WriteDiaryUseCase returns a new WriteDiary use case.
func (c *Container) WriteDiaryUseCase() *usecase.WriteDiary {
	return usecase.NewWriteDiary(c.ports())
}

// StartExecutionUseCase returns a new StartExecution use case.
func (c *Container) StartExecutionUseCase() *usecase.StartExecution {
	return usecase.NewStartExecution(c.ports())
}

// CloseDayUseCase returns a new CloseDay use case.
func (c *Container) CloseDayUseCase() *usecase.CloseDay {
	return usecase.NewCloseDay(c.ports(), c.AppConfig.Rules())
}

// AddLibraryItemUseCase returns a new AddLibraryItem use case.
func (c *Container) AddLibraryItemUseCase() *usecase.AddLibraryItem {
	return usecase.NewAddLibraryItem(c.ports(), c.AppConfig.Budget.LibraryCost)
}

// RemoveLibraryItemUseCase returns a new RemoveLibraryItem use case.
func (c *Container) RemoveLibraryItemUseCase() *usecase.RemoveLibraryItem {
	return usecase.NewRemoveLibraryItem(c.ports())
}

// UseLibraryItemUseCase returns a new UseLibraryItem use case.
func (c *Container) UseLibraryItemUseCase() *usecase.UseLibraryItem {
	return usecase.NewUseLibraryItem(c.ports())
}

// ShowLibraryUseCase returns a new ShowLibrary use case.
func (c *Container) ShowLibraryUseCase() *usecase.ShowLibrary {
	return usecase.NewShowLibrary(c.State, c.Clock)
}

// SavePlanUseCase returns a new SavePlan use case.
func (c *Container) SavePlanUseCase() *usecase.SavePlan {
	return usecase.NewSavePlan(c.ports())
}

// DeletePlanUseCase returns a new DeletePlan use case.
func (c *Container) DeletePlanUseCase() *usecase.DeletePlan {
	return usecase.NewDeletePlan(c.ports())
}

// AddPlanInstanceUseCase returns a new AddPlanInstance use case.
func (c *Container) AddPlanInstanceUseCase() *usecase.AddPlanInstance {
	return usecase.NewAddPlanInstance(c.ports())
}

// ShowInsightsUseCase returns a new ShowInsights use case.
func (c *Container) ShowInsightsUseCase() *usecase.ShowInsights {
	return usecase.NewShowInsights(c.State, c.Clock)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.State)
}

// ExportBackupUseCase returns a new ExportBackup use case.
func (c *Container) ExportBackupUseCase() *usecase.ExportBackup {
	return usecase.NewExportBackup(c.State, c.Backup, c.Clock, c.Logger)
}

// ImportBackupUseCase returns a new ImportBackup use case.
func (c *Container) ImportBackupUseCase() *usecase.ImportBackup {
	return usecase.NewImportBackup(c.State, c.Backup, c.Clock, c.Logger)
}

// UpdateSettingsUseCase returns a new UpdateSettings use case.
func (c *Container) UpdateSettingsUseCase() *usecase.UpdateSettings {
	return usecase.NewUpdateSettings(c.ports())
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// Close releases the log file.
func (c *Container) Close() error {
	if l, ok := c.Logger.(*logging.Logger); ok {
		return l.Close()
	}
	return nil
}
