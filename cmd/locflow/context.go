package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"locflow/internal/config"
	"locflow/internal/logging"
	"locflow/internal/repository"
	"locflow/internal/runlog"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("initialize logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) newClient() (repository.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	limiter := repository.NewLimiter(
		cfg.Repository.RateBudget,
		time.Duration(cfg.Repository.RateWindowSeconds)*time.Second,
	)
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Repository.RequestTimeoutSeconds) * time.Second,
	}
	return repository.New(
		cfg.Repository.BaseURL,
		cfg.Repository.APIToken,
		cfg.Repository.Environment,
		repository.WithLimiter(limiter),
		repository.WithHTTPClient(httpClient),
	)
}

func (c *commandContext) openStore() (*runlog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := runlog.Open(cfg.Paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return store, nil
}

// acquireRunLock serializes runs against the same repository. Concurrent
// exports and imports race on record state, so only one run may hold the
// lock at a time.
func (c *commandContext) acquireRunLock() (release func(), err error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "locflow.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another locflow run is already in progress")
	}
	return func() { _ = lock.Unlock() }, nil
}
