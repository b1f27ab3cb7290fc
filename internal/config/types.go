package config

// Content formats accepted by content_format.
const (
	FormatParagraphs = "paragraphs"
	FormatMarkdown   = "markdown"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Site          SiteConfig    `yaml:"site" koanf:"site"`
	DataSource    string        `yaml:"data_source" koanf:"data_source"`
	ContentFormat string        `yaml:"content_format" koanf:"content_format"`
	SiteDir       string        `yaml:"site_dir" koanf:"site_dir"`
	OutputDir     string        `yaml:"output_dir" koanf:"output_dir"`
	Assets        []string      `yaml:"assets" koanf:"assets"`
	Server        ServerConfig  `yaml:"server" koanf:"server"`
	Contact       ContactConfig `yaml:"contact" koanf:"contact"`
	LogLevel      string        `yaml:"log_level" koanf:"log_level"`
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// ContactConfig holds contact inbox settings.
type ContactConfig struct {
	DBPath     string `yaml:"db_path" koanf:"db_path"`
	WebhookURL string `yaml:"webhook_url,omitempty" koanf:"webhook_url"` // optional; receives each new message as JSON
}
