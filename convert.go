// SPDX-License-Identifier: MIT

package strictconf

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ManuGH/strictconf/internal/log"
)

// Convert decodes a settings mapping onto a value of type T. Keys are matched
// to struct fields by the conf tag, falling back to a case-insensitive name
// match; nested mappings recurse into nested structs. String values decode
// into time.Duration fields and encoding.TextUnmarshaler implementations out
// of the box; WithDecodeHook installs further conversions. Failures are
// reported as a *ConversionError.
func Convert[T any](settings Settings, opts ...Option) (T, error) {
	return convert[T](settings, newOptions(opts))
}

func convert[T any](settings Settings, o options) (T, error) {
	var out T

	hooks := make([]mapstructure.DecodeHookFunc, 0, len(o.hooks)+2)
	hooks = append(hooks, o.hooks...)
	hooks = append(hooks,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(hooks...),
		ErrorUnused: o.strict,
		ErrorUnset:  o.allFields,
		Result:      &out,
		TagName:     o.tagName,
	})
	if err != nil {
		return out, &ConversionError{Target: fmt.Sprintf("%T", out), Err: err}
	}

	if err := dec.Decode(map[string]any(settings)); err != nil {
		return out, &ConversionError{Target: fmt.Sprintf("%T", out), Err: err}
	}

	logger := log.WithComponent("pipeline")
	logger.Debug().
		Str("target", fmt.Sprintf("%T", out)).
		Int("keys", len(settings)).
		Msg("settings converted")
	return out, nil
}
