package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewItemsCommand creates the items command group.
func NewItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage items",
		Long:  "List and inspect product and service items in the connected company",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newItemsListCommand())
	cmd.AddCommand(newItemsGetCommand())

	return cmd
}

func newItemsListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Long:  "List items. Without a filter only active items are returned",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			items, err := client.Items().List(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			handled, err := renderStructured(items)
			if handled {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(os.Stdout, "No items found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Type", "SKU", "Unit Price")

			for _, item := range items {
				_ = table.Append(item.ID, item.Name, item.Type, item.SKU, formatAmount(item.UnitPrice))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "WHERE condition, e.g. \"Type = 'Service'\"")

	return cmd
}

func newItemsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ITEM_ID",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			item, err := client.Items().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get item: %w", err)
			}

			handled, err := renderStructured(item)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", item.ID)
			_ = table.Append("Name", item.Name)
			_ = table.Append("Type", item.Type)
			_ = table.Append("SKU", item.SKU)
			_ = table.Append("Description", item.Description)
			_ = table.Append("Unit Price", formatAmount(item.UnitPrice))
			_ = table.Append("Purchase Cost", formatAmount(item.PurchaseCost))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
