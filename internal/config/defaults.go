package config

import "time"

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:   EnvProduction,
			TokenIssuer:   "go-meet",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
			Version:       "dev",
		},
		Storage: Storage{
			Photos: Photos{
				Driver:    PhotoDriverLocal,
				Dir:       "uploads",
				PublicURL: "/uploads",
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:3000",
			RequestTimeout: 15 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
	}
}
