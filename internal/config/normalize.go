package config

import "strings"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeCodec()
	if err := c.normalizeAlphabet(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	for _, entry := range []struct {
		name  string
		value *string
	}{
		{"paths.data_dir", &c.Paths.DataDir},
		{"paths.out_dir", &c.Paths.OutDir},
		{"paths.log_dir", &c.Paths.LogDir},
	} {
		expanded, err := expandPath(strings.TrimSpace(*entry.value))
		if err != nil {
			return err
		}
		*entry.value = expanded
	}
	return nil
}

func (c *Config) normalizeCodec() {
	c.Codec.Scheme = strings.ToLower(strings.TrimSpace(c.Codec.Scheme))
	c.Codec.OnUnknown = strings.ToLower(strings.TrimSpace(c.Codec.OnUnknown))
	if c.Codec.Placeholder == "" {
		c.Codec.Placeholder = defaultPlaceholder
	}
}

func (c *Config) normalizeAlphabet() error {
	path := strings.TrimSpace(c.Alphabet.Path)
	if path == "" {
		c.Alphabet.Path = ""
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	c.Alphabet.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
