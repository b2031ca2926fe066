// SPDX-License-Identifier: MIT

package strictconf

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/ManuGH/strictconf/schema"
	"github.com/ManuGH/strictconf/yamlio"
)

// Layer deep-merges overlay settings over a base and validates the merged
// result against the schema. Later overlays win; nested mappings merge key
// by key, unlike Override's wholesale top-level replacement. Inputs are
// cloned, never mutated.
func Layer(sch *schema.Schema, base Settings, overlays ...Settings) (Settings, error) {
	merged := base.Clone()
	if merged == nil {
		merged = Settings{}
	}

	for _, overlay := range overlays {
		if overlay == nil {
			continue
		}
		dst := map[string]any(merged)
		if err := mergo.Merge(&dst, map[string]any(overlay.Clone()), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge settings layer: %w", err)
		}
		merged = dst
	}

	if err := schema.Validate(merged, sch); err != nil {
		return nil, err
	}
	return merged, nil
}

// ParseLayered reads several settings files and layers them left to right
// (defaults first, most specific last). Only the merged result is validated,
// so partial files are fine as long as the stack is complete.
func ParseLayered(sch *schema.Schema, paths ...string) (Settings, error) {
	layers := make([]Settings, 0, len(paths))
	for _, path := range paths {
		doc, err := yamlio.ReadMap(path)
		if err != nil {
			return nil, err
		}
		layers = append(layers, Settings(doc))
	}

	var base Settings
	if len(layers) > 0 {
		base = layers[0]
		layers = layers[1:]
	}
	return Layer(sch, base, layers...)
}
