package config

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/aurcheck/pkg/config"
)

// decoderConfig returns the mapstructure config used to decode the merged
// koanf tree into result.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           result,
	}
}

// stringToDurationHookFunc decodes config.Duration from Go duration strings
// and from integer nanoseconds. Negative values are rejected.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Duration]() {
			return data, nil
		}

		var d config.Duration

		switch v := data.(type) {
		case string:
			if err := d.UnmarshalText([]byte(v)); err != nil {
				return nil, err
			}

			return d, nil
		case int64:
			if err := d.UnmarshalText([]byte(time.Duration(v).String())); err != nil {
				return nil, err
			}

			return d, nil
		default:
			return data, nil
		}
	}
}
