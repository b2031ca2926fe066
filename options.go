// SPDX-License-Identifier: MIT

package strictconf

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/ManuGH/strictconf/schema"
)

// DefaultTagName is the struct tag consulted when converting settings onto a
// target type.
const DefaultTagName = "conf"

// options collects the per-call adjustments accepted by Extract and Convert.
type options struct {
	overrides  map[string]any
	envPrefix  string
	schemaOpts []schema.Option
	hooks      []mapstructure.DecodeHookFunc
	tagName    string
	strict     bool
	allFields  bool
}

// Option adjusts a single Extract or Convert call.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{tagName: DefaultTagName}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOverride replaces one top-level settings key between validation and
// conversion. Explicit overrides win over environment overrides.
func WithOverride(key string, value any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		o.overrides[key] = value
	}
}

// WithOverrides replaces several top-level settings keys at once.
func WithOverrides(overrides map[string]any) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]any, len(overrides))
		}
		for k, v := range overrides {
			o.overrides[k] = v
		}
	}
}

// WithEnvOverrides reads PREFIX_<SECTION> environment variables as overrides
// for scalar top-level sections (see OverridesFromEnv).
func WithEnvOverrides(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// AllowUnknownSections loads the schema tolerating settings keys it does not
// name, so overrides may introduce new top-level keys.
func AllowUnknownSections() Option {
	return func(o *options) {
		o.schemaOpts = append(o.schemaOpts, schema.AllowUnknown())
	}
}

// WithDecodeHook adds a conversion hook. Caller hooks run before the
// built-in duration and TextUnmarshaler hooks.
func WithDecodeHook(hook mapstructure.DecodeHookFunc) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, hook)
	}
}

// WithTagName changes the struct tag consulted during conversion.
func WithTagName(name string) Option {
	return func(o *options) {
		o.tagName = name
	}
}

// Strict makes conversion fail on settings keys the target type has no field
// for. Off by default, matching the schema being the authority on unknown
// keys.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// AllFields makes conversion fail when a target field receives no value.
// Off by default; required-ness normally lives in the schema.
func AllFields() Option {
	return func(o *options) {
		o.allFields = true
	}
}
