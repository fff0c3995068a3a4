package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered collaboration providers",
	RunE:  runProvidersList,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProvidersList(cmd *cobra.Command, _ []string) error {
	if providerRegistry == nil {
		return errors.New("provider registry not configured")
	}

	names := providerRegistry.Names()
	if len(names) == 0 {
		cmd.Println("No providers registered.")
		return nil
	}

	cmd.Println("Registered providers:")
	for _, name := range names {
		marker := " "
		if name == providerName {
			marker = "*"
		}
		cmd.Printf("  %s %s\n", marker, name)
	}
	return nil
}
