package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv           = "FOODAPP_APP_ENV"
	EnvLogLevel         = "FOODAPP_LOG_LEVEL"
	EnvDeliveryFeeCents = "FOODAPP_PRICING_DELIVERY_FEE_CENTS"
	EnvTaxRateBps       = "FOODAPP_PRICING_TAX_RATE_BPS"
	EnvMinQuantity      = "FOODAPP_PRICING_MIN_QUANTITY"
	EnvMaxQuantity      = "FOODAPP_PRICING_MAX_QUANTITY"
)

type Config struct {
	App      AppConfig
	Pricing  PricingConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Pricing.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FOODAPP_APP_ENV" default:"development"`
	LogLevel     string `envconfig:"FOODAPP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FOODAPP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// PricingConfig carries the cart pricing knobs. Amounts are cents and
// basis points so the environment never holds floating point money.
type PricingConfig struct {
	DeliveryFeeCents int `envconfig:"FOODAPP_PRICING_DELIVERY_FEE_CENTS" default:"500"`
	TaxRateBps       int `envconfig:"FOODAPP_PRICING_TAX_RATE_BPS" default:"800"`
	MinQuantity      int `envconfig:"FOODAPP_PRICING_MIN_QUANTITY" default:"1"`
	MaxQuantity      int `envconfig:"FOODAPP_PRICING_MAX_QUANTITY" default:"99"`
	PromoCodeMinLen  int `envconfig:"FOODAPP_PRICING_PROMO_CODE_MIN_LEN" default:"5"`
	PromoCodeMaxLen  int `envconfig:"FOODAPP_PRICING_PROMO_CODE_MAX_LEN" default:"6"`
}

func (p PricingConfig) validate() error {
	if p.DeliveryFeeCents < 0 {
		return fmt.Errorf("delivery fee must be non-negative, got %d", p.DeliveryFeeCents)
	}
	if p.TaxRateBps < 0 || p.TaxRateBps > 10000 {
		return fmt.Errorf("tax rate must be between 0 and 10000 bps, got %d", p.TaxRateBps)
	}
	if p.MinQuantity < 1 {
		return fmt.Errorf("min quantity must be at least 1, got %d", p.MinQuantity)
	}
	if p.MaxQuantity < p.MinQuantity {
		return fmt.Errorf("max quantity %d is below min quantity %d", p.MaxQuantity, p.MinQuantity)
	}
	if p.PromoCodeMinLen < 0 || p.PromoCodeMaxLen < p.PromoCodeMinLen {
		return fmt.Errorf("invalid promo code length bounds [%d, %d]", p.PromoCodeMinLen, p.PromoCodeMaxLen)
	}
	return nil
}

type CheckoutConfig struct {
	PlacementLatency time.Duration `envconfig:"FOODAPP_CHECKOUT_PLACEMENT_LATENCY" default:"1500ms"`
	AllowedCountries []string      `envconfig:"FOODAPP_CHECKOUT_ALLOWED_COUNTRIES" default:"US,CA,GB,AU,DE,FR"`
}

func (c CheckoutConfig) validate() error {
	if c.PlacementLatency < 0 {
		return fmt.Errorf("placement latency must be non-negative, got %v", c.PlacementLatency)
	}
	if len(c.AllowedCountries) == 0 {
		return fmt.Errorf("at least one allowed country is required")
	}
	for _, country := range c.AllowedCountries {
		if len(strings.TrimSpace(country)) != 2 {
			return fmt.Errorf("allowed countries must be two-letter codes, got %q", country)
		}
	}
	return nil
}
