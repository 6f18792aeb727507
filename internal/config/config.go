package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// DefaultDaemonPort is the port the inference daemon listens on when the
// configured host omits one.
const DefaultDaemonPort = "11434"

// Config holds runtime parameters for the service.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server" toml:"server"`
	Daemon DaemonConfig `json:"daemon" yaml:"daemon" toml:"daemon"`
	Model  ModelConfig  `json:"model" yaml:"model" toml:"model"`
	Log    LogConfig    `json:"log" yaml:"log" toml:"log"`
	CORS   CORSConfig   `json:"cors" yaml:"cors" toml:"cors"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host              string   `env:"HOST"                envDefault:"0.0.0.0"  json:"host" yaml:"host" toml:"host"`
	Port              int      `env:"PORT"                envDefault:"5000"     json:"port" yaml:"port" toml:"port"`
	MaxBodyBytes      int64    `env:"MAX_BODY_BYTES"      envDefault:"1048576"  json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	ReadHeaderTimeout Duration `env:"READ_HEADER_TIMEOUT" envDefault:"15s"      json:"read_header_timeout" yaml:"read_header_timeout" toml:"read_header_timeout"`
	ShutdownTimeout   Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"10s"      json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DaemonConfig controls how the inference daemon is located, launched and stopped.
type DaemonConfig struct {
	Host             string   `env:"OLLAMA_HOST"         envDefault:"http://127.0.0.1:11434"        json:"host" yaml:"host" toml:"host"`
	Bin              string   `env:"OLLAMA_BIN"          envDefault:"ollama"                        json:"bin" yaml:"bin" toml:"bin"`
	InstallURL       string   `env:"OLLAMA_INSTALL_URL"  envDefault:"https://ollama.com/install.sh" json:"install_url" yaml:"install_url" toml:"install_url"`
	AutoStart        bool     `env:"AUTO_START"          envDefault:"true"                          json:"auto_start" yaml:"auto_start" toml:"auto_start"`
	AutoInstall      bool     `env:"AUTO_INSTALL"        envDefault:"false"                         json:"auto_install" yaml:"auto_install" toml:"auto_install"`
	StartGracePeriod Duration `env:"START_GRACE_PERIOD"  envDefault:"5s"                            json:"start_grace_period" yaml:"start_grace_period" toml:"start_grace_period"`
	StopTimeout      Duration `env:"STOP_TIMEOUT"        envDefault:"5s"                            json:"stop_timeout" yaml:"stop_timeout" toml:"stop_timeout"`
	StopOnExit       bool     `env:"STOP_DAEMON_ON_EXIT" envDefault:"true"                          json:"stop_on_exit" yaml:"stop_on_exit" toml:"stop_on_exit"`
	ProbeTimeout     Duration `env:"PROBE_TIMEOUT"       envDefault:"3s"                            json:"probe_timeout" yaml:"probe_timeout" toml:"probe_timeout"`
}

// BaseURL parses Host into the daemon API base URL. A bare host or host:port
// is accepted, as the daemon itself accepts in OLLAMA_HOST.
func (d DaemonConfig) BaseURL() (*url.URL, error) {
	raw := strings.TrimSpace(d.Host)
	if raw == "" {
		raw = "127.0.0.1"
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid daemon host %q: %w", d.Host, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid daemon host %q: missing host", d.Host)
	}
	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Hostname(), DefaultDaemonPort)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	return u, nil
}

// ModelConfig holds model selection defaults.
type ModelConfig struct {
	Default     string `env:"DEFAULT_MODEL"      envDefault:"ministral-3:8b-cloud" json:"default" yaml:"default" toml:"default"`
	PullDefault bool   `env:"PULL_DEFAULT_MODEL" envDefault:"true"                 json:"pull_default" yaml:"pull_default" toml:"pull_default"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Debug bool   `env:"DEBUG"     envDefault:"false" json:"debug" yaml:"debug" toml:"debug"`
	Level string `env:"LOG_LEVEL" envDefault:"info"  json:"level" yaml:"level" toml:"level"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"                          json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"           json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization" json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

// Duration is a time.Duration that decodes from strings like "5s" in env
// values and config files alike.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// FromEnv loads optional dotenv files, then parses the environment over the
// struct defaults. Missing dotenv files are ignored.
func FromEnv(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		_ = godotenv.Load(file)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration: defaults and environment first,
// then the optional config file on top.
func Resolve(path string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if err := LoadInto(path, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot work at runtime.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Model.Default) == "" {
		return fmt.Errorf("default model must not be empty")
	}
	if _, err := c.Daemon.BaseURL(); err != nil {
		return err
	}
	if c.Daemon.StartGracePeriod < 0 {
		return fmt.Errorf("start grace period must not be negative")
	}
	return nil
}

// Deps exposes sub-configs to the dependency container.
type Deps struct {
	dig.Out
	Server *ServerConfig
	Daemon *DaemonConfig
	Model  *ModelConfig
	Log    *LogConfig
	CORS   *CORSConfig
}

// Provide splits cfg into its sections for injection.
func Provide(cfg *Config) Deps {
	return Deps{
		Server: &cfg.Server,
		Daemon: &cfg.Daemon,
		Model:  &cfg.Model,
		Log:    &cfg.Log,
		CORS:   &cfg.CORS,
	}
}
