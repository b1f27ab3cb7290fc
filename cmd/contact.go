package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/webluciano/folio/internal/contact"
	"github.com/webluciano/folio/internal/db"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage messages received through the contact form",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List received contact messages, newest first",
	RunE:  runContactList,
}

func init() {
	contactListCmd.Flags().Int("limit", 20, "maximum number of messages to show (0 for all)")
	contactCmd.AddCommand(contactListCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Contact.DBPath); os.IsNotExist(err) {
		fmt.Println("No messages received yet.")
		return nil
	}

	database, err := db.Open(cfg.Contact.DBPath)
	if err != nil {
		return fmt.Errorf("opening contact inbox: %w", err)
	}
	defer database.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	messages, err := contact.NewStore(database).List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		fmt.Println("No messages received yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tNAME\tEMAIL\tSUBJECT\tMESSAGE")
	for _, m := range messages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.Name, m.Email, orDash(m.Subject), truncate(m.Message, 60))
	}
	w.Flush()

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate shortens s to at most n runes on a single line.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
