package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	var (
		allPages bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "query STATEMENT",
		Short: "Run a raw query",
		Long: `Run a raw query statement against the connected company.

Example:
  qb query "SELECT * FROM Invoice WHERE Balance > '0'"

With --all the statement must not carry STARTPOSITION or MAXRESULTS clauses;
pagination is handled automatically.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt := strings.Join(args, " ")

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var records []map[string]interface{}
			if allPages {
				records, err = client.QueryAll(ctx, stmt, pageSize)
			} else {
				records, err = client.Query(ctx, stmt)
			}

			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}

			handled, err := renderStructured(records)
			if handled {
				return err
			}

			// Raw records have no fixed columns; table output falls back to JSON.
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")

			if err := encoder.Encode(records); err != nil {
				return fmt.Errorf("encoding records: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "page size for --all (max 1000)")

	return cmd
}
