// SPDX-License-Identifier: MIT

package strictconf

import (
	"github.com/ManuGH/strictconf/internal/log"
	"github.com/ManuGH/strictconf/schema"
)

// Override applies runtime overrides to settings and re-validates the result
// against the schema.
//
// Ownership is explicit: the input mapping is never mutated. With no
// overrides the input is returned as-is; otherwise a deep clone with each
// override set at the top level is validated and returned. An override
// replaces the previous value wholesale; assigning a scalar over a nested
// mapping is legal and not merged.
func Override(settings Settings, sch *schema.Schema, overrides map[string]any) (Settings, error) {
	if len(overrides) == 0 {
		return settings, nil
	}

	next := settings.Clone()
	if next == nil {
		next = Settings{}
	}
	for k, v := range overrides {
		next[k] = cloneValue(v)
	}

	if err := schema.Validate(next, sch); err != nil {
		return nil, err
	}

	logger := log.WithComponent("pipeline")
	logger.Debug().
		Int("overrides", len(overrides)).
		Msg("overrides applied")
	return next, nil
}
