package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"stenocodec/internal/alphabet"
	"stenocodec/internal/codec"
	"stenocodec/internal/config"
	"stenocodec/internal/logging"
	"stenocodec/internal/runstore"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configFlagValue())
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

// ensureLogger builds the config-driven logger. Logging failures degrade to
// a nop logger rather than blocking codec work.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// buildScheme resolves the active encoding scheme, preferring an explicit
// flag over the configured default.
func (c *commandContext) buildScheme(schemeFlag string) (codec.Scheme, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	value := strings.TrimSpace(schemeFlag)
	if value == "" {
		value = cfg.Codec.Scheme
	}
	tag, err := codec.ParseTag(value)
	if err != nil {
		return nil, err
	}

	alpha, err := c.loadAlphabet()
	if err != nil {
		return nil, err
	}

	return codec.Resolve(tag, alpha, codec.Options{
		OnUnknown:   codec.UnknownPolicy(cfg.Codec.OnUnknown),
		Placeholder: cfg.Codec.Placeholder,
	})
}

func (c *commandContext) loadAlphabet() (*alphabet.Alphabet, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Alphabet.Path) == "" {
		return alphabet.Default(), nil
	}
	return alphabet.LoadFile(cfg.Alphabet.Path)
}

func (c *commandContext) openStore() (*runstore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return runstore.Open(cfg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
