package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Panoptic-IT-Solutions/quickbooks-client/pkg/quickbooks"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage customers",
		Long:  "List, inspect, and create customers in the connected company",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List customers, optionally filtered by a WHERE condition",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customers, err := client.Customers().List(context.Background(), filter)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			handled, err := renderStructured(customers)
			if handled {
				return err
			}

			if len(customers) == 0 {
				fmt.Fprintln(os.Stdout, "No customers found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Display Name", "Company", "Email", "Balance")

			for _, customer := range customers {
				email := ""
				if customer.PrimaryEmailAddr != nil {
					email = customer.PrimaryEmailAddr.Address
				}

				_ = table.Append(customer.ID, customer.DisplayName, customer.CompanyName,
					email, formatAmount(customer.Balance))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "WHERE condition, e.g. \"Active = true\"")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			handled, err := renderStructured(customer)
			if handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", customer.ID)
			_ = table.Append("Display Name", customer.DisplayName)
			_ = table.Append("Company Name", customer.CompanyName)
			_ = table.Append("Balance", formatAmount(customer.Balance))
			_ = table.Append("Sync Token", customer.SyncToken)

			if customer.PrimaryEmailAddr != nil {
				_ = table.Append("Email", customer.PrimaryEmailAddr.Address)
			}

			if customer.PrimaryPhone != nil {
				_ = table.Append("Phone", customer.PrimaryPhone.FreeFormNumber)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		displayName string
		companyName string
		email       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			customer := &quickbooks.Customer{
				DisplayName: displayName,
				CompanyName: companyName,
			}

			if email != "" {
				customer.PrimaryEmailAddr = &quickbooks.EmailAddress{Address: email}
			}

			created, err := client.Customers().Create(context.Background(), customer)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Successfully created customer '%s' with ID %s\n", created.DisplayName, created.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&displayName, "name", "n", "", "customer display name (required)")
	cmd.Flags().StringVar(&companyName, "company", "", "company name")
	cmd.Flags().StringVar(&email, "email", "", "primary email address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
