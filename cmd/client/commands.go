package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-meet/models"
	"github.com/spf13/cobra"
)

var (
	feedCity      string
	feedAgeFrom   int
	feedAgeTo     int
	feedInterests []int64

	connectTo string

	respondID     int64
	respondStatus string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print the account and profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api, result, err := signIn(cmd)
		if err != nil {
			return err
		}
		if result.Profile == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "no profile yet: onboarding required")
		}
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "token: %s\n", api.Token())
		}
		return printJSON(cmd, result)
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the feed of the acting user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api, session, err := signIn(cmd)
		if err != nil {
			return err
		}

		filter := models.FeedFilter{
			ViewerID:    session.User.ID,
			City:        feedCity,
			InterestIDs: feedInterests,
		}
		if cmd.Flags().Changed("age-from") {
			filter.AgeFrom = &feedAgeFrom
		}
		if cmd.Flags().Changed("age-to") {
			filter.AgeTo = &feedAgeTo
		}

		profiles, err := api.Feed(cmd.Context(), filter)
		if err != nil {
			return err
		}
		return printJSON(cmd, profiles)
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <user-id>",
	Short: "Show a profile by user id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := signIn(cmd)
		if err != nil {
			return err
		}

		profile, err := api.Profile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, profile)
	},
}

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Send a connection request",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api, session, err := signIn(cmd)
		if err != nil {
			return err
		}

		connection, err := api.Connect(cmd.Context(), models.CreateConnectionRequest{
			RequesterID: session.User.ID,
			ReceiverID:  connectTo,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, connection)
	},
}

var incomingCmd = &cobra.Command{
	Use:   "incoming",
	Short: "List pending requests addressed to the acting user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api, session, err := signIn(cmd)
		if err != nil {
			return err
		}

		incoming, err := api.Incoming(cmd.Context(), session.User.ID)
		if err != nil {
			return err
		}
		return printJSON(cmd, incoming)
	},
}

var respondCmd = &cobra.Command{
	Use:   "respond",
	Short: "Accept or reject a pending request",
	RunE: func(cmd *cobra.Command, _ []string) error {
		status := models.ConnectionStatus(strings.ToUpper(strings.TrimSpace(respondStatus)))
		if !status.IsResponse() {
			return fmt.Errorf("--status must be ACCEPTED or REJECTED")
		}

		api, session, err := signIn(cmd)
		if err != nil {
			return err
		}

		connection, err := api.Respond(cmd.Context(), respondID, models.RespondConnectionRequest{
			Status:        status,
			CurrentUserID: session.User.ID,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, connection)
	},
}

var interestsCmd = &cobra.Command{
	Use:   "interests",
	Short: "List the interest catalogue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api, _, err := newAdapter(cmd)
		if err != nil {
			return err
		}

		interests, err := api.Interests(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, interests)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List every account (development servers only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		api, _, err := signIn(cmd)
		if err != nil {
			return err
		}

		users, err := api.Users(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, users)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [user-id]",
	Short: "Mark an account VERIFIED (development servers only)",
	Long: `Mark an account VERIFIED so it appears in other users' feeds.
Without an argument the acting user is verified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, session, err := signIn(cmd)
		if err != nil {
			return err
		}

		userID := session.User.ID
		if len(args) == 1 {
			userID = args[0]
		}

		user, err := api.VerifyUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		return printJSON(cmd, user)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print client and server versions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "client: %s\n", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

		api, _, err := newAdapter(cmd)
		if err != nil {
			return err
		}

		serverVersion, err := api.Version(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "server: %s\n", serverVersion)
		return nil
	},
}

func init() {
	feedCmd.Flags().StringVar(&feedCity, "city", "", "City filter")
	feedCmd.Flags().IntVar(&feedAgeFrom, "age-from", 0, "Minimum age")
	feedCmd.Flags().IntVar(&feedAgeTo, "age-to", 0, "Maximum age")
	feedCmd.Flags().Int64SliceVar(&feedInterests, "interests", nil, "Interest ids, any of them matches")

	connectCmd.Flags().StringVar(&connectTo, "to", "", "Receiver user id")
	_ = connectCmd.MarkFlagRequired("to")

	respondCmd.Flags().Int64Var(&respondID, "id", 0, "Connection id")
	respondCmd.Flags().StringVar(&respondStatus, "status", "", "ACCEPTED or REJECTED")
	_ = respondCmd.MarkFlagRequired("id")
	_ = respondCmd.MarkFlagRequired("status")
}
