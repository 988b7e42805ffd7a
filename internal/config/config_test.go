package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, BackendSupabase, cfg.StoreBackend)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, "connect@nicsanimf.com", cfg.Notify.Recipient)
	assert.Equal(t, "https://formspree.io/f/xdkdpeel", cfg.Notify.RelayPrimaryURL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.LeadRateLimit)
	assert.False(t, cfg.TrustProxyHeaders)
}

// TestParseMissingSupabaseCredentials - missing store credentials are fatal at startup
func TestParseMissingSupabaseCredentials(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
	}{
		{"both missing", "", ""},
		{"key missing", "https://abc.supabase.co", ""},
		{"url missing", "", "anon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STORE_BACKEND", "supabase")
			t.Setenv("SUPABASE_URL", tt.url)
			t.Setenv("SUPABASE_ANON_KEY", tt.key)

			_, err := Parse()
			assert.ErrorIs(t, err, ErrMissingStoreCredentials)
		})
	}
}

func TestParseRelativeSupabaseURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", "supabase")
	t.Setenv("SUPABASE_URL", "abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")

	_, err := Parse()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingStoreCredentials)
}

func TestParsePostgresBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := Parse()
	assert.ErrorIs(t, err, ErrMissingStoreCredentials)

	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/nicsan?sslmode=disable")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
}

func TestParseUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "dynamo")

	_, err := Parse()
	assert.Error(t, err)
}

func TestAddrKeepsColon(t *testing.T) {
	cfg := &Config{Port: ":9000"}
	assert.Equal(t, ":9000", cfg.Addr())
}
