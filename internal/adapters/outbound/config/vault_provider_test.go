package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kvSecretResponse = `{
  "data": {
    "data": {"GROQ_API_KEY": "vault-key", "RETRIES": 3},
    "metadata": {"created_time": "2026-01-01T00:00:00Z", "deletion_time": "", "destroyed": false, "version": 1}
  }
}`

func newVaultServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/secret/data/groqagent" || r.Header.Get("X-Vault-Token") != "root" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(kvSecretResponse)) //nolint:errcheck
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewVaultProvider(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, path string
		expectedErr                string
	}{
		"valid":          {server: "http://localhost:8200", token: "root", mount: "secret", path: "groqagent"},
		"missing-server": {token: "root", mount: "secret", path: "groqagent", expectedErr: "server is required"},
		"missing-token":  {server: "http://localhost:8200", mount: "secret", path: "groqagent", expectedErr: "token is required"},
		"missing-mount":  {server: "http://localhost:8200", token: "root", path: "groqagent", expectedErr: "mountPath is required"},
		"missing-path":   {server: "http://localhost:8200", token: "root", mount: "secret", expectedErr: "secretPath is required"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.path)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	server := newVaultServer(t)

	vp, err := NewVaultProvider(server.URL, "root", "secret", "groqagent")
	require.NoError(t, err)

	tests := map[string]struct {
		key         string
		expected    string
		expectedErr string
	}{
		"string-value": {
			key:      "GROQ_API_KEY",
			expected: "vault-key",
		},
		"missing-key": {
			key:         "GROQ_MODEL",
			expectedErr: "vault secret groqagent does not contain key GROQ_MODEL",
		},
		"non-string-value": {
			key:         "RETRIES",
			expectedErr: "vault secret RETRIES is not a string",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		init      InitVaultProvider
		expectErr bool
	}{
		"vault-disabled": {
			init: InitVaultProvider{Server: "-", Token: "-", MountPath: "secret", SecretPath: "groqagent"},
		},
		"missing-token": {
			init:      InitVaultProvider{Server: "http://localhost:8200", MountPath: "secret", SecretPath: "groqagent"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, err := tt.init.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, ctx)
		})
	}
}
