package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		RootPath         string `json:"root_path"`
		ControllerName   string `json:"controller_name"`
		ScriptSuffix     string `json:"script_suffix"`
		DashboardPath    string `json:"dashboard_path"`
		SetupPath        string `json:"setup_path"`
		RuntimeErrorPath string `json:"runtime_error_path"`
		ManifestPath     string `json:"manifest_path"`
		SiteConfigPath   string `json:"site_config_path"`
		PagesDir         string `json:"pages_dir"`
		StaticDir        string `json:"static_dir"`
		AssetMatch       string `json:"asset_match"`
		DebugFormat      string `json:"debug_format"`
		Version          string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		LoginPath     string   `json:"login_path"`
	} `json:"auth,omitempty"`

	Session struct {
		CookieName string   `json:"cookie_name"`
		TTL        Duration `json:"ttl"`
		Secure     bool     `json:"secure"`

		PurgeInterval Duration `json:"purge_interval"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			RootPath:         jsonCfg.App.RootPath,
			ControllerName:   jsonCfg.App.ControllerName,
			ScriptSuffix:     jsonCfg.App.ScriptSuffix,
			DashboardPath:    jsonCfg.App.DashboardPath,
			SetupPath:        jsonCfg.App.SetupPath,
			RuntimeErrorPath: jsonCfg.App.RuntimeErrorPath,
			ManifestPath:     jsonCfg.App.ManifestPath,
			SiteConfigPath:   jsonCfg.App.SiteConfigPath,
			PagesDir:         jsonCfg.App.PagesDir,
			StaticDir:        jsonCfg.App.StaticDir,
			AssetMatch:       jsonCfg.App.AssetMatch,
			DebugFormat:      jsonCfg.App.DebugFormat,
			Version:          jsonCfg.App.Version,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			LoginPath:     jsonCfg.Auth.LoginPath,
		},
		Session: Session{
			CookieName: jsonCfg.Session.CookieName,
			TTL:        time.Duration(jsonCfg.Session.TTL),
			Secure:     jsonCfg.Session.Secure,

			PurgeInterval: time.Duration(jsonCfg.Session.PurgeInterval),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
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
