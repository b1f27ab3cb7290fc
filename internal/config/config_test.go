package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataSource != "data/articles.json" {
		t.Errorf("expected default data_source %q, got %q", "data/articles.json", cfg.DataSource)
	}
	if cfg.ContentFormat != FormatParagraphs {
		t.Errorf("expected default content_format %q, got %q", FormatParagraphs, cfg.ContentFormat)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Site.Title = "Luciano"
	original.DataSource = "https://example.com/data/articles.json"
	original.ContentFormat = FormatMarkdown
	original.Assets = []string{"css/**", "img/*.png"}
	original.Server.Port = 9090
	original.Server.AllowAll = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Title != original.Site.Title {
		t.Errorf("site.title: got %q, want %q", loaded.Site.Title, original.Site.Title)
	}
	if loaded.DataSource != original.DataSource {
		t.Errorf("data_source: got %q, want %q", loaded.DataSource, original.DataSource)
	}
	if loaded.ContentFormat != original.ContentFormat {
		t.Errorf("content_format: got %q, want %q", loaded.ContentFormat, original.ContentFormat)
	}
	if loaded.Server != original.Server {
		t.Errorf("server: got %+v, want %+v", loaded.Server, original.Server)
	}
	if len(loaded.Assets) != len(original.Assets) {
		t.Fatalf("assets length: got %d, want %d", len(loaded.Assets), len(original.Assets))
	}
	for i, v := range loaded.Assets {
		if v != original.Assets[i] {
			t.Errorf("assets[%d]: got %q, want %q", i, v, original.Assets[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DataSource != DefaultConfig().DataSource {
		t.Errorf("expected default data_source, got %q", cfg.DataSource)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_DATA_SOURCE", "other.json")
	t.Setenv("FOLIO_SERVER__PORT", "9999")
	t.Setenv("FOLIO_SITE__TITLE", "From env")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataSource != "other.json" {
		t.Errorf("data_source override failed: got %q", loaded.DataSource)
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("server.port override failed: got %d", loaded.Server.Port)
	}
	if loaded.Site.Title != "From env" {
		t.Errorf("site.title override failed: got %q", loaded.Site.Title)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty data source", func(c *Config) { c.DataSource = " " }, true},
		{"markdown format", func(c *Config) { c.ContentFormat = FormatMarkdown }, false},
		{"empty format", func(c *Config) { c.ContentFormat = "" }, false},
		{"invalid format", func(c *Config) { c.ContentFormat = "rst" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"relative base url", func(c *Config) { c.Site.BaseURL = "example.com" }, true},
		{"empty base url", func(c *Config) { c.Site.BaseURL = "" }, false},
		{"empty db path", func(c *Config) { c.Contact.DBPath = "" }, true},
		{"webhook url", func(c *Config) { c.Contact.WebhookURL = "https://hooks.example.com/folio" }, false},
		{"bad webhook url", func(c *Config) { c.Contact.WebhookURL = "ftp://hooks.example.com" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestArticleURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://luciano.dev/"
	if got := cfg.ArticleURL("swift ui"); got != "https://luciano.dev/article?id=swift+ui" {
		t.Errorf("ArticleURL = %q", got)
	}
}

func TestAbsoluteArticleURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = ""
	if _, err := cfg.AbsoluteArticleURL("1"); !errors.Is(err, ErrNoBaseURL) {
		t.Errorf("empty base url error = %v, want ErrNoBaseURL", err)
	}

	cfg.Site.BaseURL = "https://luciano.dev"
	got, err := cfg.AbsoluteArticleURL("1")
	if err != nil {
		t.Fatalf("AbsoluteArticleURL: %v", err)
	}
	if got != "https://luciano.dev/article?id=1" {
		t.Errorf("AbsoluteArticleURL = %q", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"assets/**", []string{"assets/**"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
