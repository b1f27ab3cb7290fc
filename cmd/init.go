package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and writes a .folio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("  Data source: %s\n", cfg.DataSource)
		fmt.Printf("  Output dir:  %s\n", cfg.OutputDir)
		fmt.Println("Run `folio serve` to preview the site or `folio build` to generate it.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
