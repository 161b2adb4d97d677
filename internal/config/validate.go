package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRepository(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRepository() error {
	if c.Repository.BaseURL == "" {
		return errors.New("repository.base_url must be set")
	}
	if parsed, err := url.Parse(c.Repository.BaseURL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("repository.base_url %q is not a valid URL", c.Repository.BaseURL)
	}
	if c.Repository.APIToken == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/locflow/config.toml"
		}
		return fmt.Errorf("repository.api_token is required. Set LOCFLOW_API_TOKEN env var or edit %s (create with 'locflow config init')", defaultPath)
	}
	if c.Repository.SourceLocale == "" {
		return errors.New("repository.source_locale must be set")
	}
	return nil
}

func (c *Config) validateExport() error {
	if !c.Export.Content && !c.Export.Assets {
		return errors.New("export must include content, assets, or both")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
