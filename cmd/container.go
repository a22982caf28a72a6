package cmd

import (
	"os"

	"github.com/fistbump/fistbump/internal/config"
	"github.com/fistbump/fistbump/internal/orchestrator"
	"github.com/fistbump/fistbump/internal/repository"
	"github.com/fistbump/fistbump/internal/service"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// container holds all the dependencies for the application.

type container struct {
	cfg    *config.Config
	logger *zap.Logger

	fsRepo    repository.FileSystemRepository
	gitRepo   repository.GitRepository
	ghRepo    repository.GithubRepository
	stateRepo repository.StateRepository
	promptSvc service.PromptService
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	gitRepo, err := repository.NewGitRepository()
	if err != nil {
		return nil, err
	}

	// GitHub repository is optional - only create if a token is provided
	var ghRepo repository.GithubRepository
	if cfg.GithubToken != "" {
		ghRepo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo)
		if err != nil {
			return nil, err
		}
	}

	stateRepo := repository.NewJSONStateRepository(fsRepo, cfg.StateDir)
	promptSvc := service.NewPromptService(os.Stdin, os.Stdout)

	return &container{
		cfg:       cfg,
		logger:    logger,
		fsRepo:    fsRepo,
		gitRepo:   gitRepo,
		ghRepo:    ghRepo,
		stateRepo: stateRepo,
		promptSvc: promptSvc,
	}, nil
}

// newLogger builds the diagnostic logger. Protocol output goes to stdout
// directly; the logger only carries warnings and debug details.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if os.Getenv("FISTBUMP_DEBUG") != "" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// InitCommands initializes the root command with its dependencies.
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	orch := orchestrator.NewBumpOrchestrator(
		c.gitRepo,
		c.fsRepo,
		c.ghRepo,
		c.stateRepo,
		c.promptSvc,
		c.cfg,
		c.logger,
		os.Stdout,
	)
	rootCmd = NewRootCmd(orch)
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
