package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Query directory users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users in the tenant",
	RunE:  runUsersList,
}

var usersGetCmd = &cobra.Command{
	Use:   "get [id-or-upn]",
	Short: "Show a single user by ID or principal name",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersGet,
}

var usersLimit int

func init() {
	usersListCmd.Flags().IntVar(&usersLimit, "limit", 0, "maximum number of users to return (provider default when 0)")
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	users, err := provider.ListUsers(ctx, usersLimit)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		cmd.Println("No users found.")
		return nil
	}

	for _, u := range users {
		cmd.Printf("  %s\n", u.ID)
		cmd.Printf("    Name: %s\n", u.DisplayName)
		if u.Email != "" {
			cmd.Printf("    Email: %s\n", u.Email)
		}
		if u.Department != "" {
			cmd.Printf("    Department: %s\n", u.Department)
		}
		cmd.Println()
	}
	return nil
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	user, err := provider.GetUser(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	cmd.Printf("ID: %s\n", user.ID)
	cmd.Printf("Name: %s\n", user.DisplayName)
	cmd.Printf("Email: %s\n", user.Email)
	if user.Department != "" {
		cmd.Printf("Department: %s\n", user.Department)
	}
	return nil
}
