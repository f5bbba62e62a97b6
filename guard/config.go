package guard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"

	constant "github.com/LerianStudio/lib-guard/guard/constants"
	"github.com/LerianStudio/lib-guard/guard/opentelemetry/metrics"
	guardzap "github.com/LerianStudio/lib-guard/guard/zap"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid guard configuration")

var (
	configValidator     *validator.Validate
	configValidatorOnce sync.Once
)

// getValidator returns the validator shared by every Config.Validate call.
func getValidator() *validator.Validate {
	configValidatorOnce.Do(func() {
		configValidator = validator.New(validator.WithRequiredStructEnabled())
	})

	return configValidator
}

// Config is the environment-driven configuration of a Guard.
type Config struct {
	Component        string `env:"GUARD_COMPONENT"         envDefault:"guard" validate:"required,max=64"`
	Environment      string `env:"ENV"                                         validate:"omitempty,oneof=production staging uat development local"`
	LogLevel         string `env:"GUARD_LOG_LEVEL"                             validate:"omitempty,oneof=debug info warn error"`
	TelemetryEnabled bool   `env:"GUARD_TELEMETRY_ENABLED" envDefault:"true"`
	IncludeStack     bool   `env:"GUARD_INCLUDE_STACK"     envDefault:"true"`
}

// LoadConfig reads Config from the environment and validates it.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the field constraints of cfg.
func (cfg Config) Validate() error {
	if err := getValidator().Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			return fmt.Errorf("%w: '%s' failed '%s'", ErrInvalidConfig, first.Field(), first.Tag())
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// NewFromConfig builds a Guard from cfg. A non-empty LogLevel enables a zap
// logger bridged to OpenTelemetry; TelemetryEnabled wires the counters to the
// global meter provider. opts are applied last and override both.
func NewFromConfig(cfg Config, opts ...Option) (*Guard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithComponent(cfg.Component),
		WithTelemetry(cfg.TelemetryEnabled),
	}

	if cfg.LogLevel != "" {
		logger, err := guardzap.New(guardzap.Config{
			Environment:     guardzap.Environment(cfg.Environment),
			Level:           cfg.LogLevel,
			OTelLibraryName: constant.TelemetrySDKName,
		})
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}

		base = append(base, WithLogger(logger))
	}

	if cfg.TelemetryEnabled {
		factory, err := metrics.NewMetricsFactory(otel.GetMeterProvider().Meter(constant.TelemetrySDKName), nil)
		if err != nil {
			return nil, fmt.Errorf("build metrics factory: %w", err)
		}

		base = append(base, WithMetricsFactory(factory))
	}

	g := New(append(base, opts...)...)
	g.includeStack = cfg.IncludeStack && cfg.Environment != string(guardzap.EnvironmentProduction)

	return g, nil
}
