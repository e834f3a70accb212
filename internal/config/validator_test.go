package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty database path", func(c *Config) { c.Database.Path = " " }, "database.path"},
		{"addr without port", func(c *Config) { c.Server.Addr = "localhost" }, "server.addr"},
		{"addr with empty port", func(c *Config) { c.Server.Addr = "localhost:" }, "server.addr"},
		{"blank origin", func(c *Config) { c.Server.AllowedOrigins = []string{"http://a", ""} }, "server.allowed_origins[1]"},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }, "export.dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestValidate_InMemoryDatabaseAllowed(t *testing.T) {
	cfg := Default()
	cfg.Database.Path = ":memory:"
	cfg.Server.Addr = ":0"
	assert.Empty(t, cfg.Validate())
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Empty(t, ValidationErrors(nil).Error())

	one := ValidationErrors{{Field: "log.level", Value: "x", Message: "bad"}}
	assert.Equal(t, "log.level: bad (got: x)", one.Error())

	two := append(one, ValidationError{Field: "server.addr", Value: "y", Message: "bad"})
	assert.Contains(t, two.Error(), "2 validation errors:")
	assert.Contains(t, two.Error(), "  2. server.addr: bad (got: y)")
}
