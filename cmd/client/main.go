package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	address    string
	botToken   string
	timeout    time.Duration
	verbose    bool
	telegramID int64
	username   string
	firstName  string
)

var rootCmd = &cobra.Command{
	Use:   "go-meet-client",
	Short: "Drive a go-meet server as a mini-app user",
	Long: `go-meet-client signs init data with the bot token the same way the
Telegram app does and calls the API on behalf of the chosen Telegram user.

Every command signs in first, so --telegram-id selects who is acting.

Available commands:
  login     - Sign in and print the account and profile
  feed      - Show the feed of the acting user
  profile   - Show a profile by user id
  connect   - Send a connection request
  incoming  - List pending requests addressed to the acting user
  respond   - Accept or reject a pending request
  interests - List the interest catalogue
  users     - List every account (development servers only)
  verify    - Mark an account VERIFIED (development servers only)
  version   - Print client and server versions`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&address, "address", "a", "", "API base URL (default: ADAPTER_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&botToken, "bot-token", "", "Telegram bot token (default: APP_BOT_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout (default: ADAPTER_REQUEST_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Int64VarP(&telegramID, "telegram-id", "t", 1001, "Telegram id of the acting user")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "Telegram username of the acting user")
	rootCmd.PersistentFlags().StringVar(&firstName, "first-name", "Dev", "First name of the acting user")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(incomingCmd)
	rootCmd.AddCommand(respondCmd)
	rootCmd.AddCommand(interestsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
