package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Manage invoices",
		Long:  "List, inspect, and delete invoices in the connected company",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "List invoices, optionally filtered by a WHERE condition",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			invoices, err := client.Invoices().List(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			handled, err := renderStructured(invoices)
			if handled {
				return err
			}

			if len(invoices) == 0 {
				fmt.Fprintln(os.Stdout, "No invoices found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Doc Number", "Customer", "Date", "Due", "Total", "Balance")

			for _, invoice := range invoices {
				_ = table.Append(invoice.ID, invoice.DocNumber, refName(invoice.CustomerRef),
					invoice.TxnDate, invoice.DueDate,
					formatAmount(invoice.TotalAmt), formatAmount(invoice.Balance))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "WHERE condition, e.g. \"Balance > '0'\"")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			handled, err := renderStructured(invoice)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", invoice.ID)
			_ = table.Append("Doc Number", invoice.DocNumber)
			_ = table.Append("Customer", refName(invoice.CustomerRef))
			_ = table.Append("Date", invoice.TxnDate)
			_ = table.Append("Due Date", invoice.DueDate)
			_ = table.Append("Total", formatAmount(invoice.TotalAmt))
			_ = table.Append("Balance", formatAmount(invoice.Balance))
			_ = table.Append("Sync Token", invoice.SyncToken)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newInvoicesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INVOICE_ID",
		Short: "Delete an invoice",
		Long:  "Delete an invoice (the record is kept and flagged deleted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invoiceID := args[0]

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete invoice '%s'? (y/N): ", invoiceID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(os.Stdout, "Cancelled")

					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			// Deletion needs the current sync token.
			invoice, err := client.Invoices().Get(ctx, invoiceID)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			if err := client.Invoices().Delete(ctx, invoice.ID, invoice.SyncToken); err != nil {
				return fmt.Errorf("failed to delete invoice: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Successfully deleted invoice '%s'\n", invoiceID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
