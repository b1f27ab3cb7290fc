package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/config"
	"github.com/webluciano/folio/internal/render"
	"github.com/webluciano/folio/internal/ui"
)

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Copy an article's public link to the clipboard",
	Long: `Looks up the article and copies its public URL through the terminal
clipboard (OSC 52). The URL is always printed on stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runShare,
}

func init() {
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	id := args[0]

	a, ok, err := article.NewRepository(newSource(cfg)).Find(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("article %q not found", id)
	}

	target, err := shareTarget(cfg, a)
	if err != nil {
		return err
	}
	fmt.Println(target.URL)

	var clip ui.Clipboard
	if isatty.IsTerminal(os.Stdout.Fd()) {
		clip = ui.OSC52Clipboard{W: os.Stdout}
	}
	// The terminal has no share sheet; always fall back to copying.
	return ui.Share(cmd.Context(), target, nil, clip, ui.WriterNotifier{W: os.Stderr})
}

// shareTarget builds what gets shared for a. A shared link has to work
// outside the site, so a missing site.base_url is an error.
func shareTarget(cfg *config.Config, a article.Article) (ui.ShareTarget, error) {
	u, err := cfg.AbsoluteArticleURL(a.ID)
	if err != nil {
		return ui.ShareTarget{}, fmt.Errorf("sharing %q: %w (set site.base_url in %s)", a.ID, err, cfgFile)
	}
	return ui.ShareTarget{
		Title: newRenderer(cfg, render.DefaultLinkPattern).PageTitle(a.Title),
		URL:   u,
	}, nil
}
