package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Serve and build a personal portfolio site from a JSON article feed",
	Long: `Folio renders a portfolio site from one static JSON document of articles.
It can serve the site over HTTP, build it into static files, and inspect
single articles from the terminal. Messages sent through the contact form
are kept in a local SQLite inbox.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
