package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		env      map[string]string
		args     []string
		expected *Config
		err      string
	}{
		{
			name: "defaults",
			expected: &Config{
				Server:   "http://localhost:5678",
				Timeout:  10 * time.Second,
				LogLevel: "info",
			},
		},
		{
			name: "flags",
			args: []string{"-S", "http://atomix:8080", "-U", "foo", "-P", "bar", "--timeout", "1s", "--log-level", "debug"},
			expected: &Config{
				Server:   "http://atomix:8080",
				Username: "foo",
				Password: "bar",
				Timeout:  1 * time.Second,
				LogLevel: "debug",
			},
		},
		{
			name: "config file",
			file: "server: http://file:5678\ntoken: abc\ntimeout: 30s\nlog-level: warn\n",
			expected: &Config{
				Server:   "http://file:5678",
				Token:    "abc",
				Timeout:  30 * time.Second,
				LogLevel: "warn",
			},
		},
		{
			name: "env overrides file",
			file: "server: http://file:5678\n",
			env:  map[string]string{"ATOMIX_SERVER": "http://env:5678", "ATOMIX_LOG_LEVEL": "error"},
			expected: &Config{
				Server:   "http://env:5678",
				Timeout:  10 * time.Second,
				LogLevel: "error",
			},
		},
		{
			name: "flag overrides env",
			env:  map[string]string{"ATOMIX_TOKEN": "env"},
			args: []string{"--token", "flag"},
			expected: &Config{
				Server:   "http://localhost:5678",
				Token:    "flag",
				Timeout:  10 * time.Second,
				LogLevel: "info",
			},
		},
		{
			name: "empty server",
			args: []string{"--server", ""},
			err:  "invalid config",
		},
		{
			name: "username without password",
			args: []string{"-U", "foo"},
			err:  "invalid config",
		},
		{
			name: "password without username",
			env:  map[string]string{"ATOMIX_PASSWORD": "bar"},
			err:  "invalid config",
		},
		{
			name: "malformed server",
			args: []string{"--server", "://atomix"},
			err:  "invalid config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			var file string
			if tc.file != "" {
				file = filepath.Join(t.TempDir(), "atomix.yaml")
				require.NoError(t, os.WriteFile(file, []byte(tc.file), 0o600))
			}

			vip := viper.New()
			flags := pflag.NewFlagSet(tc.name, pflag.ContinueOnError)

			cfg := &Config{}
			cfg.Bind(flags, vip)
			require.NoError(t, flags.Parse(tc.args))
			require.NoError(t, Read(vip, file))

			err := cfg.Parse(vip)
			if tc.err != "" {
				assert.ErrorContains(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	err := Read(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
