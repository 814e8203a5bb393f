package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/yapihq/yapi-mcp/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the registry token in the OS keychain",
	Long: `Manage the YAPI registry token stored in the OS keychain.

The keychain is consulted when YAPI_TOKEN is not set, so a stored token
lets MCP clients spawn yapi-mcp without putting the credential in their
configuration.`,
}

var authSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the registry token",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuthSetToken,
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ClearToken(); err != nil {
			return err
		}
		fmt.Println("Token removed from keychain.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a token is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := config.StoredToken()
		if err != nil {
			return err
		}
		if tok == "" {
			fmt.Println("No token in keychain.")
		} else {
			fmt.Println("Token present in keychain.")
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(authSetTokenCmd)
	authCmd.AddCommand(authClearCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthSetToken(cmd *cobra.Command, args []string) error {
	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		// Prompt with hidden input rather than leaving the token in
		// shell history.
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("YAPI token").
				EchoMode(huh.EchoModePassword).
				Validate(huh.ValidateNotEmpty()).
				Value(&token),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("read token: %w", err)
		}
	}

	if err := config.StoreToken(token); err != nil {
		return err
	}
	fmt.Println("Token stored in keychain.")
	return nil
}
