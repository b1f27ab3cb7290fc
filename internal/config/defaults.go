package config

// DefaultAssets are copied from site_dir into the build output.
var DefaultAssets = []string{
	"assets/**",
	"img/**",
	"*.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:   "Portfolio - Desarrollador iOS & Web",
			BaseURL: "http://localhost:8080",
		},
		DataSource:    "data/articles.json",
		ContentFormat: FormatParagraphs,
		SiteDir:       ".",
		OutputDir:     "public",
		Assets:        DefaultAssets,
		Server: ServerConfig{
			Port: 8080,
		},
		Contact: ContactConfig{
			DBPath: ".folio/contact.db",
		},
		LogLevel: "info",
	}
}
