package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeConversion()
	c.normalizeWorkflow()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.InboxDir, err = expandPath(c.Paths.InboxDir); err != nil {
		return fmt.Errorf("paths.inbox_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeConversion() {
	c.Conversion.DefaultBrand = strings.TrimSpace(c.Conversion.DefaultBrand)
	if c.Conversion.DefaultBrand == "" {
		c.Conversion.DefaultBrand = defaultBrand
	}
	c.Conversion.DefaultModel = strings.TrimSpace(c.Conversion.DefaultModel)
	if c.Conversion.DefaultModel == "" {
		c.Conversion.DefaultModel = defaultModel
	}

	if len(c.Conversion.Extensions) == 0 {
		c.Conversion.Extensions = defaultExtensions()
		return
	}
	exts := make([]string, 0, len(c.Conversion.Extensions))
	seen := make(map[string]struct{}, len(c.Conversion.Extensions))
	for _, ext := range c.Conversion.Extensions {
		normalized := strings.ToLower(strings.TrimSpace(ext))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		exts = append(exts, normalized)
	}
	if len(exts) == 0 {
		exts = defaultExtensions()
	}
	c.Conversion.Extensions = exts
}

func (c *Config) normalizeWorkflow() {
	if c.Workflow.PollInterval <= 0 {
		c.Workflow.PollInterval = defaultPollInterval
	}
	if c.Workflow.MaxAttempts <= 0 {
		c.Workflow.MaxAttempts = defaultMaxAttempts
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
