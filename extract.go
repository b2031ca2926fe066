// SPDX-License-Identifier: MIT

package strictconf

import (
	"github.com/ManuGH/strictconf/internal/log"
	"github.com/ManuGH/strictconf/schema"
	"github.com/ManuGH/strictconf/yamlio"
)

// Validate checks a settings mapping against a schema. Empty settings fail
// with ErrEmptySettings, a nil or empty schema with ErrEmptySchema (settings
// are checked first); rule failures produce a *ValidationError listing every
// violation.
func Validate(settings Settings, sch *schema.Schema) error {
	return schema.Validate(settings, sch)
}

// Parse reads a settings file and validates it against the schema.
func Parse(path string, sch *schema.Schema) (Settings, error) {
	doc, err := yamlio.ReadMap(path)
	if err != nil {
		return nil, err
	}

	settings := Settings(doc)
	if err := schema.Validate(settings, sch); err != nil {
		return nil, err
	}

	logger := log.WithComponent("pipeline")
	logger.Debug().
		Str("path", path).
		Int("sections", len(settings)).
		Msg("settings parsed")
	return settings, nil
}

// ValidSections returns the ordered top-level section names of a schema,
// failing with ErrEmptySchema when it is nil or empty.
func ValidSections(sch *schema.Schema) ([]string, error) {
	return schema.Sections(sch)
}

// Extract runs the full pipeline: load the schema, parse and validate the
// settings file, apply overrides (environment first, explicit values win)
// with re-validation, and convert the result to T. The first failing stage
// aborts the call; no partial result is ever returned.
func Extract[T any](configPath, schemaPath string, opts ...Option) (T, error) {
	var zero T
	o := newOptions(opts)

	sch, err := schema.Load(schemaPath, o.schemaOpts...)
	if err != nil {
		return zero, err
	}

	settings, err := Parse(configPath, sch)
	if err != nil {
		return zero, err
	}

	overrides := make(map[string]any)
	if o.envPrefix != "" {
		for k, v := range OverridesFromEnv(o.envPrefix, sch) {
			overrides[k] = v
		}
	}
	for k, v := range o.overrides {
		overrides[k] = v
	}

	settings, err = Override(settings, sch, overrides)
	if err != nil {
		return zero, err
	}

	return convert[T](settings, o)
}
