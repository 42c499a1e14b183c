package di

import (
	"github.com/jmoiron/sqlx"

	"tasktrack/application/serviceimpl"
	"tasktrack/domain/repositories"
	"tasktrack/domain/services"
	"tasktrack/infrastructure/sqlite"
	"tasktrack/interfaces/web/handlers"
	"tasktrack/pkg/config"
	"tasktrack/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories
	TaskRepository  repositories.TaskRepository
	LabelRepository repositories.LabelRepository

	// Services
	TaskService  services.TaskService
	LabelService services.LabelService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := sqlite.DatabaseConfig{
		Path: c.Config.Database.Path,
	}

	db, err := sqlite.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "path", c.Config.Database.Path)

	if err := sqlite.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	return nil
}

func (c *Container) initRepositories() {
	c.TaskRepository = sqlite.NewTaskRepository(c.DB)
	c.LabelRepository = sqlite.NewLabelRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	c.LabelService = serviceimpl.NewLabelService(c.LabelRepository)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.LabelRepository)
	logger.Info("Services initialized")
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return err
		}
		logger.Info("Database connection closed")
	}
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:  c.TaskService,
		LabelService: c.LabelService,
	}
}
