package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	// Check defaults are applied
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != EnvDevelopment {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvDevelopment)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.MaxRangeDays != 366 {
		t.Errorf("MaxRangeDays = %d, want 366", cfg.MaxRangeDays)
	}
	if cfg.ICSVendor != DefaultICSVendor || cfg.ICSProduct != DefaultICSProduct {
		t.Errorf("ICS identity = %q/%q", cfg.ICSVendor, cfg.ICSProduct)
	}
	if cfg.ICSDomain != DefaultICSDomain {
		t.Errorf("ICSDomain = %q, want %q", cfg.ICSDomain, DefaultICSDomain)
	}
	if cfg.ICSCalendarName != DefaultICSCalendarName {
		t.Errorf("ICSCalendarName = %q, want %q", cfg.ICSCalendarName, DefaultICSCalendarName)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv()

	// Set custom values
	os.Setenv("PORT", "3000")
	os.Setenv("ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("SHUTDOWN_TIMEOUT", "30s")
	os.Setenv("ICS_VENDOR", "Acme")
	os.Setenv("ICS_PRODUCT", "Festivos")
	os.Setenv("ICS_DOMAIN", "festivos.example.com")
	os.Setenv("ICS_CALENDAR_NAME", "Festivos")
	os.Setenv("MAX_RANGE_DAYS", "731")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.Env != EnvProduction {
		t.Errorf("Env = %q, want %q", cfg.Env, EnvProduction)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.ICSVendor != "Acme" || cfg.ICSProduct != "Festivos" {
		t.Errorf("ICS identity = %q/%q", cfg.ICSVendor, cfg.ICSProduct)
	}
	if cfg.ICSDomain != "festivos.example.com" {
		t.Errorf("ICSDomain = %q", cfg.ICSDomain)
	}
	if cfg.ICSCalendarName != "Festivos" {
		t.Errorf("ICSCalendarName = %q", cfg.ICSCalendarName)
	}
	if cfg.MaxRangeDays != 731 {
		t.Errorf("MaxRangeDays = %d, want 731", cfg.MaxRangeDays)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	clearEnv()
	os.Setenv("ENV", "qa")
	os.Setenv("LOG_FORMAT", "xml")
	defer clearEnv()

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail")
	}
	// Both problems are reported together
	for _, want := range []string{"ENV must be one of", "LOG_FORMAT must be one of"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:            8080,
			Env:             EnvDevelopment,
			ShutdownTimeout: 10 * time.Second,
			LogLevel:        "info",
			LogFormat:       "text",
			ICSDomain:       DefaultICSDomain,
			MaxRangeDays:    366,
		}
	}

	// Table-driven tests for validation
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "valid development config", modify: func(c *Config) {}},
		{name: "valid production config", modify: func(c *Config) {
			c.Env = EnvProduction
			c.LogFormat = "json"
		}},
		{name: "invalid port - too low", modify: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "invalid port - too high", modify: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "invalid environment", modify: func(c *Config) { c.Env = "invalid" }, wantErr: true},
		{name: "invalid log level", modify: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "invalid log format", modify: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "zero shutdown timeout", modify: func(c *Config) { c.ShutdownTimeout = 0 }, wantErr: true},
		{name: "empty ics domain", modify: func(c *Config) { c.ICSDomain = "" }, wantErr: true},
		{name: "zero range", modify: func(c *Config) { c.MaxRangeDays = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{Env: EnvDevelopment}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}

	cfg.Env = EnvProduction
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{Env: EnvProduction}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}

	cfg.Env = EnvDevelopment
	if cfg.IsProduction() {
		t.Error("IsProduction() = true, want false")
	}
}

// clearEnv removes all config-related environment variables
func clearEnv() {
	vars := []string{
		"PORT", "ENV", "SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
		"ICS_VENDOR", "ICS_PRODUCT", "ICS_DOMAIN", "ICS_CALENDAR_NAME",
		"MAX_RANGE_DAYS",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
