package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/article"
	"github.com/webluciano/folio/internal/page"
	"github.com/webluciano/folio/internal/progress"
	"github.com/webluciano/folio/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one article to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	controller := page.NewController(
		article.NewRepository(newSource(cfg)),
		newRenderer(cfg, render.DefaultLinkPattern),
		page.Options{
			Indicator: progress.NewSpinner(os.Stderr, "Cargando artículo..."),
			Logger:    newLogger(cfg),
		},
	)

	v := controller.Load(cmd.Context(), args[0])
	switch v.State {
	case page.StateFound:
		printDetail(os.Stdout, v.Detail)
		return nil
	case page.StateNotFound:
		printFallback(os.Stderr, v.Fallback)
		return fmt.Errorf("article %q not found", args[0])
	default:
		printFallback(os.Stderr, v.Fallback)
		return v.Err
	}
}

func printDetail(w io.Writer, d *render.Detail) {
	fmt.Fprintln(w, d.Title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(d.Title))))
	meta := []string{d.Tag}
	if d.Date != "" {
		meta = append(meta, d.Date)
	}
	meta = append(meta, d.ReadingLabel()+" lectura")
	fmt.Fprintln(w, strings.Join(meta, " · "))
	for _, p := range d.Paragraphs {
		fmt.Fprintln(w)
		fmt.Fprintln(w, p)
	}
}

func printFallback(w io.Writer, fb *page.Fallback) {
	if fb == nil {
		return
	}
	fmt.Fprintf(w, "%s\n%s\n", fb.Heading, fb.Message)
}
