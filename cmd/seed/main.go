package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/service"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/spf13/cobra"
)

var (
	users   int
	dsn     string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with the interest catalogue and demo users",
	Long: `Apply migrations, upsert the default interest catalogue and create
demo users with profiles. Demo users are VERIFIED so they show up in feeds.

Running the command again does not duplicate demo users.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().IntVarP(&users, "users", "n", 10, "Number of demo users")
	rootCmd.Flags().StringVarP(&dsn, "dsn", "d", "", "Database DSN (default: STORAGE_DB_DATABASE_URI)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if users < 0 {
		return fmt.Errorf("--users must not be negative")
	}

	if dsn != "" {
		os.Setenv("STORAGE_DB_DATABASE_URI", dsn)
	}
	cfg, err := config.GetSeedConfig()
	if err != nil {
		return err
	}

	log := logger.NewCLILogger("go-meet-seed", cmd.ErrOrStderr(), verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	storages, err := store.NewStorages(ctx, db, cfg.Storage, log)
	if err != nil {
		return err
	}

	seeder := service.NewSeedService(storages, utils.NewUUIDGenerator(), nil, nil, log)
	report, err := seeder.Seed(ctx, users)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "interests: %d, users: %d, failed: %d\n", report.Interests, report.Users, report.Failed)
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
