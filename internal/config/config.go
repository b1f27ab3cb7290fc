package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: FOLIO_SERVER__PORT -> server.port.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validFormats = map[string]bool{
	FormatParagraphs: true,
	FormatMarkdown:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataSource) == "" {
		return fmt.Errorf("data_source is required")
	}

	if c.ContentFormat != "" && !validFormats[c.ContentFormat] {
		return fmt.Errorf("invalid content_format %q: must be one of paragraphs, markdown", c.ContentFormat)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid site.base_url %q: must be an absolute URL", c.Site.BaseURL)
		}
	}

	if c.Contact.DBPath == "" {
		return fmt.Errorf("contact.db_path is required")
	}

	if c.Contact.WebhookURL != "" {
		u, err := url.Parse(c.Contact.WebhookURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid contact.webhook_url %q: must be an http(s) URL", c.Contact.WebhookURL)
		}
	}

	return nil
}

// ErrNoBaseURL is returned when an absolute link is needed and
// site.base_url is empty.
var ErrNoBaseURL = errors.New("site.base_url is not set")

// ArticleURL returns the URL of an article's detail page. Without a base
// URL the result is relative to the server root.
func (c *Config) ArticleURL(id string) string {
	base := strings.TrimRight(c.Site.BaseURL, "/")
	return base + "/article?id=" + url.QueryEscape(id)
}

// AbsoluteArticleURL is ArticleURL for links that leave the site, such as
// shared ones. It fails with ErrNoBaseURL when no base URL is configured.
func (c *Config) AbsoluteArticleURL(id string) (string, error) {
	if strings.TrimSpace(c.Site.BaseURL) == "" {
		return "", ErrNoBaseURL
	}
	return c.ArticleURL(id), nil
}
