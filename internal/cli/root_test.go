package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulse/internal/errors"
)

// resetGlobalFlags restores flag state after a test mutates it.
func resetGlobalFlags(t *testing.T) {
	t.Helper()
	original := []struct {
		ptr   *string
		value string
	}{
		{&configFlag, configFlag},
		{&apiURLFlag, apiURLFlag},
		{&refreshFlag, refreshFlag},
		{&timeoutFlag, timeoutFlag},
	}
	t.Cleanup(func() {
		for _, f := range original {
			*f.ptr = f.value
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	resetGlobalFlags(t)
	configFlag, apiURLFlag, refreshFlag, timeoutFlag = "", "", "", ""

	// Empty dirs so no config file is discovered
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.Refresh)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	resetGlobalFlags(t)
	configFlag = ""
	apiURLFlag = "http://metrics.internal:9000"
	refreshFlag = "10s"
	timeoutFlag = "3s"

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://metrics.internal:9000", cfg.API.URL)
	assert.Equal(t, 10*time.Second, cfg.Refresh)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
}

func TestLoadConfigRejectsInvalidDuration(t *testing.T) {
	resetGlobalFlags(t)
	configFlag, apiURLFlag, timeoutFlag = "", "", ""
	refreshFlag = "not-a-duration"

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := loadConfig()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestLoadConfigRejectsInvalidOverride(t *testing.T) {
	resetGlobalFlags(t)
	configFlag, refreshFlag, timeoutFlag = "", "", ""
	apiURLFlag = "not a url"

	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// The override still goes through config validation
	_, err := loadConfig()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestParseDurationFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "seconds",
			value: "5s",
			want:  5 * time.Second,
		},
		{
			name:  "minutes",
			value: "2m",
			want:  2 * time.Minute,
		},
		{
			name:    "garbage",
			value:   "soon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := parseDurationFlag("refresh", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestRootCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"dash", "metrics", "status", "init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "api-url", "refresh", "timeout"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing global flag --%s", name)
	}
}
