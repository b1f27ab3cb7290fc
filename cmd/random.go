package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/render"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Print one randomly chosen article card",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		list := page.NewListController(
			article.NewRepository(newSource(cfg)),
			newRenderer(cfg, render.DefaultLinkPattern),
			newLogger(cfg),
		)
		v := list.Load(cmd.Context(), render.KindRandom)
		if v.State == page.StateError {
			printFallback(os.Stderr, v.Fallback)
			return v.Err
		}
		if len(v.Cards) == 0 {
			fmt.Println("No articles published yet.")
			return nil
		}

		c := v.Cards[0]
		fmt.Printf("%s  [%s]\n", c.Title, c.Tag)
		if c.Date != "" {
			fmt.Println(c.Date)
		}
		if c.Excerpt != "" {
			fmt.Println(c.Excerpt)
		}
		fmt.Println(cfg.ArticleURL(c.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
