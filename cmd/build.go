package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/progress"
	"github.com/webluciano/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static site",
	Long: `Renders the listing, every article page, the contact page and the
not-found page into the output directory, copies the article feed and any
matching static assets alongside them.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir := cfg.OutputDir
	if o, _ := cmd.Flags().GetString("output"); o != "" {
		outputDir = o
	}

	generator := &site.Generator{
		Source:    newSource(cfg),
		Renderer:  newRenderer(cfg, site.StaticLinkPattern),
		SiteDir:   cfg.SiteDir,
		OutputDir: outputDir,
		Assets:    cfg.Assets,
		BaseURL:   cfg.Site.BaseURL,
		Reporter:  progress.NewReporter(),
		Logger:    newLogger(cfg),
	}
	res, err := generator.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d articles, %d pages, %d assets)\n",
		outputDir, res.Articles, res.Pages, res.Assets)
	return nil
}
