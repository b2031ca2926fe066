// SPDX-License-Identifier: MIT

package strictconf

// Settings is a parsed configuration document: a plain string-keyed mapping
// as produced by the YAML reader.
type Settings map[string]any

// Clone returns an alias-free deep copy. Nested mappings and lists are
// cloned; scalar values are copied as-is. A nil receiver stays nil.
func (s Settings) Clone() Settings {
	if s == nil {
		return nil
	}
	return cloneMap(s)
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		return cloneSlice(t)
	}
	return v
}

func cloneSlice(in []any) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = cloneValue(v)
	}
	return out
}
