package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRepository()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.ExportDir, err = expandPath(c.Paths.ExportDir); err != nil {
		return fmt.Errorf("paths.export_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeRepository() {
	c.Repository.BaseURL = strings.TrimRight(strings.TrimSpace(c.Repository.BaseURL), "/")
	c.Repository.APIToken = strings.TrimSpace(c.Repository.APIToken)
	if c.Repository.APIToken == "" {
		if value, ok := os.LookupEnv("LOCFLOW_API_TOKEN"); ok {
			c.Repository.APIToken = strings.TrimSpace(value)
		}
	}
	c.Repository.Environment = strings.TrimSpace(c.Repository.Environment)
	c.Repository.SourceLocale = strings.TrimSpace(c.Repository.SourceLocale)
	if c.Repository.RateBudget < 0 {
		c.Repository.RateBudget = 0
	}
	if c.Repository.RateBudget > 0 && c.Repository.RateWindowSeconds <= 0 {
		c.Repository.RateWindowSeconds = defaultRateWindowSeconds
	}
	if c.Repository.RequestTimeoutSeconds <= 0 {
		c.Repository.RequestTimeoutSeconds = defaultRequestTimeoutSeconds
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
