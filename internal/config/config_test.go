package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesBootstrapConstants(t *testing.T) {
	cfg := Default()

	require.Equal(t, []string{"python", "app.py"}, cfg.App.Command)
	require.Equal(t, 5000, cfg.App.Port)
	require.Equal(t, "admin", cfg.Env.AuthUser)
	require.Equal(t, "animotion123", cfg.Env.AuthPass)
	require.Equal(t, "animotion-secret-key-2024", cfg.Env.SecretKey)
	require.True(t, cfg.Env.NgrokMode)
	require.Equal(t, ModeDelay, cfg.Readiness.Mode)
	require.Equal(t, 5*time.Second, cfg.Readiness.Delay.Std())
	require.Equal(t, ProviderNgrok, cfg.Tunnel.Provider)
	require.Equal(t, "http", cfg.Tunnel.Protocol)
	require.NotEmpty(t, cfg.Tunnel.Ngrok.Token)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	data := `
app:
  port: 8080
readiness:
  mode: probe
  timeout: "2s"
  interval: "100ms"
tunnel:
  provider: ssh
  ssh:
    host: relay.example.com
    user: demo
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.App.Port)
	require.Equal(t, ModeProbe, cfg.Readiness.Mode)
	require.Equal(t, 2*time.Second, cfg.Readiness.Timeout.Std())
	require.Equal(t, 100*time.Millisecond, cfg.Readiness.Interval.Std())
	require.Equal(t, ProviderSSH, cfg.Tunnel.Provider)
	require.Equal(t, "relay.example.com", cfg.Tunnel.SSH.Host)

	// Untouched fields keep their defaults.
	require.Equal(t, "animotion123", cfg.Env.AuthPass)
	require.Equal(t, []string{"python", "app.py"}, cfg.App.Command)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("readiness:\n  delay: \"soon\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duration")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.App.Port)
}

func TestLoadOrDefaultRejectsBrokenFile(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed yaml", "app: [not a mapping\n", "parse"},
		{"invalid config", "app:\n  port: 0\n", "app.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			wd, err := os.Getwd()
			require.NoError(t, err)
			require.NoError(t, os.Chdir(dir))
			t.Cleanup(func() { _ = os.Chdir(wd) })

			require.NoError(t, os.WriteFile(filepath.Join(dir, "launchpad.yaml"), []byte(tt.data), 0o644))

			// A present-but-broken file must halt the run, never fall
			// through to the defaults.
			_, err = LoadOrDefault("")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty command", func(c *Config) { c.App.Command = nil }, "app.command"},
		{"port zero", func(c *Config) { c.App.Port = 0 }, "app.port"},
		{"port too high", func(c *Config) { c.App.Port = 70000 }, "app.port"},
		{"bad readiness mode", func(c *Config) { c.Readiness.Mode = "guess" }, "readiness.mode"},
		{"bad provider", func(c *Config) { c.Tunnel.Provider = "carrier-pigeon" }, "tunnel.provider"},
		{"ssh without host", func(c *Config) { c.Tunnel.Provider = ProviderSSH }, "tunnel.ssh.host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestURLs(t *testing.T) {
	cfg := Default()
	require.Equal(t, "http://127.0.0.1:5000", cfg.LocalURL())
	require.Equal(t, "http://192.168.1.100:5000", cfg.LANURL())
}
