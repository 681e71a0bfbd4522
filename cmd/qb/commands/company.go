package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCompanyCommand creates the company command.
func NewCompanyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "company",
		Short: "Display company information",
		Long:  "Display information about the connected QuickBooks company",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			info, err := client.GetCompanyInfo(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch company info: %w", err)
			}

			handled, err := renderStructured(info)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Company Name", info.CompanyName)
			_ = table.Append("Legal Name", info.LegalName)
			_ = table.Append("Country", info.Country)
			_ = table.Append("Company Start Date", info.CompanyStartDate)
			_ = table.Append("Fiscal Year Start", info.FiscalYearStartMonth)

			if info.Email != nil {
				_ = table.Append("Email", info.Email.Address)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
