package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/contact"
	"github.com/webluciano/folio/internal/db"
	"github.com/webluciano/folio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site over HTTP",
	Long: `Starts an HTTP server rendering the listing, article and contact pages
on every request, plus a small JSON API over the article feed.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("open", false, "open the site in the default browser")
	serveCmd.Flags().Bool("no-inbox", false, "do not store contact form submissions")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	port := cfg.Server.Port
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}

	var contacts *contact.Store
	if noInbox, _ := cmd.Flags().GetBool("no-inbox"); !noInbox {
		database, err := db.Open(cfg.Contact.DBPath)
		if err != nil {
			return fmt.Errorf("opening contact inbox: %w", err)
		}
		defer database.Close()
		contacts = contact.NewStore(database)
		if cfg.Contact.WebhookURL != "" {
			contacts.SetWebhook(contact.NewWebhook(cfg.Contact.WebhookURL), logger)
			defer contacts.Wait()
		}
	}

	srv := server.New(server.Config{
		Port:     port,
		BaseURL:  cfg.Site.BaseURL,
		AllowAll: cfg.Server.AllowAll,
	}, newSource(cfg), newRenderer(cfg, server.LinkPattern), contacts, logger)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(os.Stderr, "folio %s serving at %s\n", Version, url)
	fmt.Fprintf(os.Stderr, "  Articles: %s\n", cfg.DataSource)
	if contacts != nil {
		fmt.Fprintf(os.Stderr, "  Inbox:    %s\n", cfg.Contact.DBPath)
	}
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var c *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		c = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		c = exec.Command("open", url)
	default:
		c = exec.Command("xdg-open", url)
	}
	_ = c.Start()
}
