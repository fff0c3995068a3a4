package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Work with messaging channels",
}

var channelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List channels, across discovered teams unless --team is given",
	RunE:  runChannelsList,
}

var channelsMessagesCmd = &cobra.Command{
	Use:   "messages [channel-id]",
	Short: "Show recent messages from a channel (--team is required)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChannelsMessages,
}

var channelsPostCmd = &cobra.Command{
	Use:   "post [channel-name] [message]",
	Short: "Post a message to a named channel via its configured webhook",
	Args:  cobra.ExactArgs(2),
	RunE:  runChannelsPost,
}

var (
	channelsTeam     string
	messagesLimit    int
	channelPostTitle string
)

func init() {
	channelsListCmd.Flags().StringVar(&channelsTeam, "team", "", "team ID to list channels of")
	channelsMessagesCmd.Flags().StringVar(&channelsTeam, "team", "", "team ID the channel belongs to")
	channelsMessagesCmd.Flags().IntVar(&messagesLimit, "limit", 0, "maximum number of messages (provider default when 0)")
	channelsPostCmd.Flags().StringVar(&channelPostTitle, "title", "", "optional title; produces a card-style post")

	channelsCmd.AddCommand(channelsListCmd)
	channelsCmd.AddCommand(channelsMessagesCmd)
	channelsCmd.AddCommand(channelsPostCmd)
	rootCmd.AddCommand(channelsCmd)
}

func runChannelsList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	channels, err := provider.ListChannels(ctx, channelsTeam)
	if err != nil {
		return fmt.Errorf("failed to list channels: %w", err)
	}

	if len(channels) == 0 {
		cmd.Println("No channels found.")
		return nil
	}

	for _, ch := range channels {
		cmd.Printf("  %s\n", ch.ID)
		cmd.Printf("    Name: %s\n", ch.Name)
		if ch.Description != "" {
			cmd.Printf("    Description: %s\n", ch.Description)
		}
		if ch.TeamID != "" {
			team := ch.TeamID
			if ch.TeamName != "" {
				team = fmt.Sprintf("%s (%s)", ch.TeamName, ch.TeamID)
			}
			cmd.Printf("    Team: %s\n", team)
		}
		cmd.Println()
	}
	return nil
}

func runChannelsMessages(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	messages, err := provider.GetMessages(ctx, args[0], messagesLimit, channelsTeam)
	if err != nil {
		return fmt.Errorf("failed to get messages: %w", err)
	}

	if len(messages) == 0 {
		cmd.Println("No messages found.")
		return nil
	}

	for _, msg := range messages {
		cmd.Printf("[%s] %s: %s\n", msg.Timestamp, msg.Sender, msg.Content)
	}
	return nil
}

func runChannelsPost(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	ok, err := provider.PostMessage(ctx, args[0], args[1], channelPostTitle)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	if !ok {
		return fmt.Errorf("webhook rejected the post")
	}

	cmd.Printf("Posted to %s.\n", args[0])
	return nil
}
