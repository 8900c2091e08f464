package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulse/internal/config"
	"github.com/pulseboard/pulse/internal/errors"
)

func TestValidateServiceURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "http url",
			input: "http://localhost:8080",
		},
		{
			name:  "https url",
			input: "https://metrics.example.com",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "missing scheme",
			input:   "localhost:8080",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			input:   "ftp://example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateServiceURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitNonInteractiveRequiresURL(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Init(InitOptions{NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestInitNonInteractiveRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	existing := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(existing, []byte("workspace: Old\n"), 0644))

	err := Init(InitOptions{URL: "http://localhost:8080", NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitNonInteractiveWritesConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name":"CRM","status":"ok"}]`))
	}))
	defer server.Close()

	dir := t.TempDir()
	t.Chdir(dir)

	err := Init(InitOptions{
		URL:            server.URL,
		Workspace:      "Acme Inc",
		NonInteractive: true,
	})
	require.NoError(t, err)

	written := filepath.Join(dir, config.ConfigFileName)
	require.FileExists(t, written)

	// The written file round-trips through the loader
	cfg, err := config.Load(written)
	require.NoError(t, err)
	assert.Equal(t, server.URL, cfg.API.URL)
	assert.Equal(t, "Acme Inc", cfg.Workspace)
}

func TestInitNonInteractiveUnreachableService(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Init(InitOptions{
		// Port 1 refuses connections
		URL:            "http://127.0.0.1:1",
		NonInteractive: true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrFetch))
}
