package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full launchpad configuration. Every field has a
// compiled-in default so the tool runs with no config file at all.
type Config struct {
	App       App       `yaml:"app"`
	Env       Env       `yaml:"env"`
	Readiness Readiness `yaml:"readiness"`
	Tunnel    Tunnel    `yaml:"tunnel"`
	Report    Report    `yaml:"report"`
}

// App describes the web application process to boot. The application
// itself is an opaque collaborator; launchpad only starts it and
// expects it to listen on Port.
type App struct {
	Command []string `yaml:"command"`
	Dir     string   `yaml:"dir,omitempty"`
	Port    int      `yaml:"port"`
}

// Env holds the values injected into the application's environment.
type Env struct {
	AuthUser  string `yaml:"auth_user"`
	AuthPass  string `yaml:"auth_pass"`
	SecretKey string `yaml:"secret_key"`
	NgrokMode bool   `yaml:"ngrok_mode"`
}

// Readiness controls how launchpad decides the application is up.
// Mode "delay" sleeps for a fixed Delay (the original behavior);
// mode "probe" polls the application port until it accepts a TCP
// connection or Timeout elapses.
type Readiness struct {
	Mode     string   `yaml:"mode"`
	Delay    Duration `yaml:"delay"`
	Timeout  Duration `yaml:"timeout"`
	Interval Duration `yaml:"interval"`
}

// Tunnel selects and configures the tunnel provider.
type Tunnel struct {
	Provider string `yaml:"provider"`
	Protocol string `yaml:"protocol"`
	Ngrok    Ngrok  `yaml:"ngrok"`
	SSH      SSH    `yaml:"ssh"`
}

// Ngrok configures the ngrok client invocation.
type Ngrok struct {
	Binary string `yaml:"binary"`
	Token  string `yaml:"token"`
}

// SSH configures the reverse-tunnel fallback provider (ssh -R style).
type SSH struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	RemotePort int    `yaml:"remote_port"`
}

// Report configures the final access summary.
type Report struct {
	LANHost string `yaml:"lan_host"`
	AutoLAN bool   `yaml:"auto_lan"`
}

// Readiness modes.
const (
	ModeDelay = "delay"
	ModeProbe = "probe"
)

// Tunnel providers.
const (
	ProviderNgrok = "ngrok"
	ProviderSSH   = "ssh"
)

// Duration wraps time.Duration so config files can use human-readable
// values like "5s" or "250ms".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: duration must be a string like \"5s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in time.Duration notation.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the underlying time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration matching the original AniMotion
// bootstrap constants. Secrets and addresses live here -- never as
// literals inside the orchestration code.
func Default() *Config {
	return &Config{
		App: App{
			Command: []string{"python", "app.py"},
			Port:    5000,
		},
		Env: Env{
			AuthUser:  "admin",
			AuthPass:  "animotion123",
			SecretKey: "animotion-secret-key-2024",
			NgrokMode: true,
		},
		Readiness: Readiness{
			Mode:     ModeDelay,
			Delay:    Duration(5 * time.Second),
			Timeout:  Duration(30 * time.Second),
			Interval: Duration(250 * time.Millisecond),
		},
		Tunnel: Tunnel{
			Provider: ProviderNgrok,
			Protocol: "http",
			Ngrok: Ngrok{
				Binary: "ngrok",
				Token:  "2NqzXakeLxEzQ8vTTQ2eWbPDMkj_7aDmSsNvAVrvDkqpeWrZg",
			},
			SSH: SSH{
				Port: 22,
			},
		},
		Report: Report{
			LANHost: "192.168.1.100",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults.
func Load(path string) (*Config, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault tries the given path first (when non-empty), then the
// standard search locations, and falls back to the compiled-in
// defaults when no config file exists. A file that exists but fails to
// parse or validate is an error, not a fallthrough: silently booting
// with the default credentials would hide the operator's typo.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	for _, candidate := range []string{"./launchpad.yaml", "~/.config/launchpad/config.yaml"} {
		cfg, err := Load(candidate)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return Default(), nil
}

// Validate rejects configurations the orchestrator cannot act on.
func (c *Config) Validate() error {
	if len(c.App.Command) == 0 {
		return fmt.Errorf("app.command must not be empty")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app.port %d out of range", c.App.Port)
	}
	switch c.Readiness.Mode {
	case ModeDelay, ModeProbe:
	default:
		return fmt.Errorf("readiness.mode %q (want %q or %q)", c.Readiness.Mode, ModeDelay, ModeProbe)
	}
	switch c.Tunnel.Provider {
	case ProviderNgrok, ProviderSSH:
	default:
		return fmt.Errorf("tunnel.provider %q (want %q or %q)", c.Tunnel.Provider, ProviderNgrok, ProviderSSH)
	}
	if c.Tunnel.Provider == ProviderSSH && c.Tunnel.SSH.Host == "" {
		return fmt.Errorf("tunnel.ssh.host required for the ssh provider")
	}
	return nil
}

// LocalURL returns the loopback URL the application serves on.
func (c *Config) LocalURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", c.App.Port)
}

// LANURL returns the LAN URL for the access report.
func (c *Config) LANURL() string {
	return fmt.Sprintf("http://%s:%d", c.Report.LANHost, c.App.Port)
}
