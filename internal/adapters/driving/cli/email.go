package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Send email",
}

var emailSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a plain-text email",
	RunE:  runEmailSend,
}

var (
	emailTo      []string
	emailSubject string
	emailBody    string
	emailFrom    string
)

func init() {
	emailSendCmd.Flags().StringArrayVar(&emailTo, "to", nil, "recipient address (can be repeated)")
	emailSendCmd.Flags().StringVar(&emailSubject, "subject", "", "email subject")
	emailSendCmd.Flags().StringVar(&emailBody, "body", "", "email body")
	emailSendCmd.Flags().StringVar(&emailFrom, "from", "", "sender user ID (first tenant user when omitted)")

	emailCmd.AddCommand(emailSendCmd)
	rootCmd.AddCommand(emailCmd)
}

func runEmailSend(cmd *cobra.Command, _ []string) error {
	if len(emailTo) == 0 {
		return errors.New("at least one --to recipient is required")
	}

	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	ok, err := provider.SendEmail(ctx, emailTo, emailSubject, emailBody, emailFrom)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if !ok {
		return errors.New("email was not accepted")
	}

	cmd.Printf("Sent to %d recipient(s).\n", len(emailTo))
	return nil
}
