package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewConnectCommand creates the connect command group.
func NewConnectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Manage the QuickBooks connection",
		Long:  "Authorize, complete, and revoke the OAuth2 connection to a QuickBooks company",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(newConnectAuthCommand())
	cmd.AddCommand(newConnectCompleteCommand())
	cmd.AddCommand(newConnectRevokeCommand())

	return cmd
}

func newConnectAuthCommand() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Print the authorization URL",
		Long: `Print the URL to open in a browser to authorize access to a company.

After consent, QuickBooks redirects to the configured redirect URI with a
'code' and 'realmId'. Pass both to 'qb connect complete'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, client.AuthorizationURL(state))

			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "opaque state value echoed back on the redirect")

	return cmd
}

func newConnectCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete CODE REALM_ID",
		Short: "Complete the authorization",
		Long:  "Exchange the authorization code for tokens and store them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			token, err := client.ExchangeCode(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to complete authorization: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Connected to company %s\n", token.RealmID)

			return nil
		},
	}
}

func newConnectRevokeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke the connection",
		Long:  "Revoke the stored refresh token and remove local credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprint(os.Stdout, "Really revoke the QuickBooks connection? (y/N): ")

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

			if err := client.RevokeToken(context.Background()); err != nil {
				return fmt.Errorf("failed to revoke connection: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Connection revoked")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
