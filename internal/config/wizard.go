package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	title, err := (&promptui.Prompt{Label: "Site title", Default: cfg.Site.Title}).Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	baseURL, err := (&promptui.Prompt{
		Label:   "Public base URL",
		Default: cfg.Site.BaseURL,
		Validate: func(s string) error {
			probe := *cfg
			probe.Site.BaseURL = s
			return probe.Validate()
		},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}

	source, err := (&promptui.Prompt{
		Label:   "Article data (path or http(s) URL)",
		Default: cfg.DataSource,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("data source is required")
			}
			return nil
		},
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}

	formatPrompt := promptui.Select{
		Label: "Article body format",
		Items: []string{
			"paragraphs: one paragraph per line",
			"markdown:   GitHub-flavoured markdown with code highlighting",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content format: %w", err)
	}
	formats := []string{FormatParagraphs, FormatMarkdown}

	outputDir, err := (&promptui.Prompt{Label: "Output directory for static builds", Default: cfg.OutputDir}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	assets, err := (&promptui.Prompt{
		Label:   "Static asset globs (comma-separated)",
		Default: strings.Join(cfg.Assets, ","),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	cfg.Site.Title = strings.TrimSpace(title)
	cfg.Site.BaseURL = strings.TrimSpace(baseURL)
	cfg.DataSource = strings.TrimSpace(source)
	cfg.ContentFormat = formats[formatIdx]
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.Assets = splitAndTrim(assets)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
