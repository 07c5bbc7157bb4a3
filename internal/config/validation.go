package config

import (
	"net/url"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/aurcheck/pkg/config"
	"github.com/smykla-skalski/aurcheck/pkg/logger"
)

var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyValue is returned when a required value is empty.
	ErrEmptyValue = errors.New("empty value not allowed")

	// ErrInvalidOption is returned when an option value is invalid.
	ErrInvalidOption = errors.New("invalid option value")
)

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
// Returns an error describing all validation failures.
func (v *Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	var validationErrors []error

	validationErrors = append(validationErrors, v.validateAUR(&cfg.AUR)...)
	validationErrors = append(validationErrors, v.validatePlatform(&cfg.Platform)...)

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		validationErrors = append(validationErrors,
			errors.Wrapf(ErrInvalidOption, "log.level: %v", err))
	}

	if len(validationErrors) > 0 {
		return errors.WithSecondaryError(
			errors.Wrapf(
				ErrInvalidConfig,
				"validation failed with %d error(s)",
				len(validationErrors),
			),
			combineErrors(validationErrors),
		)
	}

	return nil
}

func (*Validator) validateAUR(cfg *config.AURConfig) []error {
	var errs []error

	if u, err := url.Parse(cfg.BaseURL); err != nil ||
		(u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, errors.Wrapf(
			ErrInvalidOption,
			"aur.base_url %q must be an http(s) URL",
			cfg.BaseURL,
		))
	}

	if cfg.Package == "" {
		errs = append(errs, errors.Wrap(ErrEmptyValue, "aur.package"))
	}

	if cfg.UserAgent == "" {
		errs = append(errs, errors.Wrap(ErrEmptyValue, "aur.user_agent"))
	}

	if cfg.Timeout <= 0 {
		errs = append(errs, errors.Wrap(ErrInvalidOption, "aur.timeout must be positive"))
	}

	return errs
}

func (*Validator) validatePlatform(cfg *config.PlatformConfig) []error {
	var errs []error

	if cfg.OSReleasePath == "" {
		errs = append(errs, errors.Wrap(ErrEmptyValue, "platform.os_release_path"))
	}

	if len(cfg.Helpers) == 0 {
		errs = append(errs, errors.Wrap(ErrEmptyValue, "platform.helpers"))
	}

	for i, h := range cfg.Helpers {
		if h == "" {
			errs = append(errs, errors.Wrapf(ErrEmptyValue, "platform.helpers[%d]", i))
		}
	}

	if cfg.FallbackHelper == "" {
		errs = append(errs, errors.Wrap(ErrEmptyValue, "platform.fallback_helper"))
	}

	if cfg.ProbeTimeout <= 0 {
		errs = append(errs, errors.Wrap(ErrInvalidOption, "platform.probe_timeout must be positive"))
	}

	return errs
}

func combineErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	return errors.Join(errs...)
}
