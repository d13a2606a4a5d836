package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		BotToken       string   `json:"bot_token"`
		Environment    string   `json:"environment"`
		SkipSignature  bool     `json:"skip_signature"`
		InitDataMaxAge Duration `json:"init_data_max_age"`
		TokenSignKey   string   `json:"token_sign_key"`
		TokenIssuer    string   `json:"token_issuer"`
		TokenDuration  Duration `json:"token_duration"`
		RequireToken   bool     `json:"require_token"`
		LogLevel       string   `json:"log_level"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Photos struct {
			Driver    string `json:"driver"`
			Dir       string `json:"dir"`
			PublicURL string `json:"public_url"`
			S3        struct {
				Bucket          string `json:"bucket"`
				Region          string `json:"region"`
				Endpoint        string `json:"endpoint"`
				AccessKeyID     string `json:"access_key_id"`
				SecretAccessKey string `json:"secret_access_key"`
				UsePathStyle    bool   `json:"use_path_style"`
			} `json:"s3,omitempty"`
		} `json:"photos,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	photos := jsonCfg.Storage.Photos
	cfg := &StructuredConfig{
		App: App{
			BotToken:       jsonCfg.App.BotToken,
			Environment:    jsonCfg.App.Environment,
			SkipSignature:  jsonCfg.App.SkipSignature,
			InitDataMaxAge: time.Duration(jsonCfg.App.InitDataMaxAge),
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenIssuer:    jsonCfg.App.TokenIssuer,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			RequireToken:   jsonCfg.App.RequireToken,
			LogLevel:       jsonCfg.App.LogLevel,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Photos: Photos{
				Driver:    photos.Driver,
				Dir:       photos.Dir,
				PublicURL: photos.PublicURL,
				S3: S3{
					Bucket:          photos.S3.Bucket,
					Region:          photos.S3.Region,
					Endpoint:        photos.S3.Endpoint,
					AccessKeyID:     photos.S3.AccessKeyID,
					SecretAccessKey: photos.S3.SecretAccessKey,
					UsePathStyle:    photos.S3.UsePathStyle,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
