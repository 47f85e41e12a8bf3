package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatalf("expected default env to be development, got %q", cfg.App.Env)
	}
	if cfg.Pricing.DeliveryFeeCents != 500 {
		t.Fatalf("expected delivery fee 500 cents, got %d", cfg.Pricing.DeliveryFeeCents)
	}
	if cfg.Pricing.TaxRateBps != 800 {
		t.Fatalf("expected tax rate 800 bps, got %d", cfg.Pricing.TaxRateBps)
	}
	if cfg.Pricing.MinQuantity != 1 || cfg.Pricing.MaxQuantity != 99 {
		t.Fatalf("unexpected quantity bounds [%d, %d]", cfg.Pricing.MinQuantity, cfg.Pricing.MaxQuantity)
	}
	if cfg.Checkout.PlacementLatency != 1500*time.Millisecond {
		t.Fatalf("expected 1500ms placement latency, got %v", cfg.Checkout.PlacementLatency)
	}
	if len(cfg.Checkout.AllowedCountries) != 6 {
		t.Fatalf("expected 6 allowed countries, got %v", cfg.Checkout.AllowedCountries)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvDeliveryFeeCents, "0")
	t.Setenv(EnvTaxRateBps, "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected production env, got %q", cfg.App.Env)
	}
	if cfg.Pricing.DeliveryFeeCents != 0 || cfg.Pricing.TaxRateBps != 0 {
		t.Fatalf("expected zeroed pricing overrides, got %+v", cfg.Pricing)
	}
}

func TestLoad_RejectsBadBounds(t *testing.T) {
	t.Setenv(EnvMinQuantity, "10")
	t.Setenv(EnvMaxQuantity, "5")

	if _, err := Load(); err == nil {
		t.Fatal("expected inverted quantity bounds to return an error")
	}
}

func TestLoad_RejectsNegativeTaxRate(t *testing.T) {
	t.Setenv(EnvTaxRateBps, "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected negative tax rate to return an error")
	}
}
