package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_FillUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "admin123", cfg.Auth.AdminPassword)
	assert.Equal(t, InsecureDefaultSignKey, cfg.Auth.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "https://api.resend.com", cfg.Mail.BaseURL)
	assert.True(t, cfg.Auth.UsesFallbackSignKey())
}

func TestEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("CMS_USERNAME", "operator")
	t.Setenv("CMS_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("SERVER_ENVIRONMENT", "production")
	t.Setenv("STORAGE_DB_DATABASE_URL", "postgres://u:p@localhost:5432/portfolio")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "operator", cfg.Auth.AdminUsername)
	assert.Equal(t, "s3cret", cfg.Auth.AdminPassword)
	assert.Equal(t, "real-secret", cfg.Auth.TokenSignKey)
	assert.False(t, cfg.Auth.UsesFallbackSignKey())
	assert.True(t, cfg.Server.IsProduction())
	assert.True(t, cfg.Storage.DB.Valid())
	// defaults still fill what env left unset
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
}

func TestDBValid(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want bool
	}{
		{"empty", "", false},
		{"placeholder", "your_database_url_here", false},
		{"wrong scheme", "mysql://u:p@localhost/db", false},
		{"postgres", "postgres://u:p@localhost:5432/db", true},
		{"postgresql", "postgresql://u:p@localhost:5432/db", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DB{DSN: tt.dsn}.Valid())
		})
	}
}

func TestValidate_RejectsEmptyCredentials(t *testing.T) {
	cfg := &StructuredConfig{
		Auth:   Auth{AdminUsername: "", AdminPassword: "x", TokenDuration: time.Hour},
		Server: Server{HTTPAddress: ":8080"},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)

	cfg.Auth.AdminUsername = "admin"
	cfg.Auth.TokenDuration = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

func TestValidate_RejectsEmptyAddress(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{AdminUsername: "admin", AdminPassword: "admin123", TokenDuration: time.Hour},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"24h"`), &d))
	assert.Equal(t, 24*time.Hour, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestNetAddress_Set(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:9090"))
	assert.Equal(t, "localhost:9090", a.String())

	assert.Error(t, a.Set("no-port"))
	assert.Error(t, a.Set("localhost:0"))
	assert.Error(t, a.Set("not-an-ip:8080"))
}
