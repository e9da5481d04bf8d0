package config

import (
	"encoding/json"
	"fmt"
	"os"

	validator "gopkg.in/validator.v2"

	"code.cloudfoundry.org/cf-networking-helpers/db"
)

type Config struct {
	ListenHost                    string    `json:"listen_host" validate:"nonzero"`
	ListenPort                    int       `json:"listen_port" validate:"nonzero"`
	DebugServerHost               string    `json:"debug_server_host" validate:"nonzero"`
	DebugServerPort               int       `json:"debug_server_port" validate:"nonzero"`
	LogPrefix                     string    `json:"log_prefix" validate:"nonzero"`
	LogLevel                      string    `json:"log_level"`
	UAAURL                        string    `json:"uaa_url" validate:"nonzero"`
	UAAPort                       int       `json:"uaa_port" validate:"nonzero"`
	UAAClient                     string    `json:"uaa_client" validate:"nonzero"`
	UAAClientSecret               string    `json:"uaa_client_secret" validate:"nonzero"`
	CCURL                         string    `json:"cc_url" validate:"nonzero"`
	MetronAddress                 string    `json:"metron_address" validate:"nonzero"`
	Database                      db.Config `json:"database" validate:"nonzero"`
	MaxIdleConnections            int       `json:"max_idle_connections" validate:"min=0"`
	MaxOpenConnections            int       `json:"max_open_connections" validate:"min=0"`
	MaxConnectionsLifetimeSeconds int       `json:"connections_max_lifetime_seconds" validate:"min=0"`
	UploadURL                     string    `json:"upload_url"`
	UploadToken                   string    `json:"upload_token"`
	UploadTimeoutSeconds          int       `json:"upload_timeout_seconds" validate:"min=0"`
	Services                      []Service `json:"services"`
}

type Service struct {
	GUID           string `json:"guid" validate:"nonzero"`
	Label          string `json:"label" validate:"nonzero"`
	Provider       string `json:"provider"`
	Version        string `json:"version" validate:"nonzero"`
	URL            string `json:"url"`
	TimeoutSeconds int    `json:"timeout_seconds" validate:"min=0"`
	AuthToken      string `json:"auth_token"`
	Plans          []Plan `json:"plans"`
}

type Plan struct {
	GUID string `json:"guid" validate:"nonzero"`
	Name string `json:"name" validate:"nonzero"`
	Free bool   `json:"free"`
}

func (c *Config) Validate() error {
	return validator.Validate(c)
}

func New(path string) (*Config, error) {
	jsonBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %s", err)
	}

	cfg := Config{}
	err = json.Unmarshal(jsonBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %s", err)
	}

	if err := cfg.Validate(); err != nil {
		return &cfg, fmt.Errorf("invalid config: %s", err)
	}

	return &cfg, nil
}
