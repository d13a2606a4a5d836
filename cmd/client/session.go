package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-meet/internal/adapter"
	"github.com/MKhiriev/go-meet/internal/config"
	"github.com/MKhiriev/go-meet/internal/initdata"
	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/models"
	"github.com/spf13/cobra"
)

// telegramUser is the user object as the platform puts it into init data.
// The id is a bare JSON number there.
type telegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

// signInitData builds an init data payload for user signed with botToken.
func signInitData(botToken string, user telegramUser, now time.Time) (string, error) {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("encode user: %w", err)
	}

	return initdata.SignedInitData(initdata.Fields{
		initdata.KeyUser:     string(rawUser),
		initdata.KeyAuthDate: strconv.FormatInt(now.Unix(), 10),
		"query_id":           "dev-client",
	}, botToken), nil
}

func loadClientConfig() (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, err
	}
	if address != "" {
		cfg.BaseURL = address
	}
	if botToken != "" {
		cfg.BotToken = botToken
	}
	if timeout > 0 {
		cfg.RequestTimeout = timeout
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newAdapter(cmd *cobra.Command) (adapter.ServerAdapter, *config.ClientConfig, error) {
	cfg, err := loadClientConfig()
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewCLILogger("go-meet-client", cmd.ErrOrStderr(), verbose)
	api, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    cfg.BaseURL,
		RequestTimeout: cfg.RequestTimeout,
	}, log)
	if err != nil {
		return nil, nil, err
	}

	return api, cfg, nil
}

// signIn creates an adapter and signs in as the acting user.
func signIn(cmd *cobra.Command) (adapter.ServerAdapter, models.LoginResult, error) {
	api, cfg, err := newAdapter(cmd)
	if err != nil {
		return nil, models.LoginResult{}, err
	}

	raw, err := signInitData(cfg.BotToken, telegramUser{
		ID:        telegramID,
		Username:  username,
		FirstName: firstName,
	}, time.Now())
	if err != nil {
		return nil, models.LoginResult{}, err
	}

	result, err := api.Login(cmd.Context(), raw)
	if err != nil {
		return nil, models.LoginResult{}, fmt.Errorf("sign in as %d: %w", telegramID, err)
	}

	return api, result, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
