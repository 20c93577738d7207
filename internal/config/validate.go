package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.InboxDir == "" {
		return errors.New("paths.inbox_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	if c.Paths.InboxDir == c.Paths.OutputDir {
		return errors.New("paths.inbox_dir and paths.output_dir must differ; the daemon would re-ingest its own output")
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.PollInterval <= 0 {
		return errors.New("workflow.poll_interval must be positive")
	}
	if c.Workflow.MaxAttempts <= 0 {
		return errors.New("workflow.max_attempts must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
