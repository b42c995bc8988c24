package config

import (
	"testing"
	"time"
)

func devConfig() *Config {
	return &Config{
		Environment: EnvDevelopment,
		LogLevel:    "debug",
		TokenSecret: "short",
		TokenTTL:    time.Hour,
		BcryptCost:  4,
	}
}

func prodConfig() *Config {
	return &Config{
		Environment: EnvProduction,
		LogLevel:    "info",
		TokenSecret: "a-production-secret-of-32-bytes!",
		TokenTTL:    time.Hour,
		BcryptCost:  10,
	}
}

func TestValidateForProduction_SkipsNonProduction(t *testing.T) {
	if err := ValidateForProduction(devConfig()); err != nil {
		t.Fatalf("expected nil for development config, got %v", err)
	}
}

func TestValidateForProduction_AcceptsSafeConfig(t *testing.T) {
	if err := ValidateForProduction(prodConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateForProduction_RejectsShortSecret(t *testing.T) {
	cfg := prodConfig()
	cfg.TokenSecret = "too-short"
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error for short token secret")
	}
}

func TestValidateForProduction_RejectsLowBcryptCost(t *testing.T) {
	cfg := prodConfig()
	cfg.BcryptCost = 8
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error for low bcrypt cost")
	}
}

func TestValidateForProduction_RejectsDebugLogging(t *testing.T) {
	cfg := prodConfig()
	cfg.LogLevel = "debug"
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error for debug logging")
	}
}

func TestValidateForProduction_RejectsNonPositiveTTL(t *testing.T) {
	cfg := prodConfig()
	cfg.TokenTTL = 0
	if err := ValidateForProduction(cfg); err == nil {
		t.Fatal("expected error for zero token TTL")
	}
}
