// SPDX-License-Identifier: MIT

package strictconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ManuGH/strictconf/internal/log"
	"github.com/ManuGH/strictconf/schema"
)

// OverridesFromEnv collects overrides for scalar top-level sections from
// PREFIX_<SECTION> environment variables, parsing each value according to
// the section's declared type. Sections holding mappings or lists have no
// flat environment encoding and are skipped. Unparsable values are skipped
// with a warning rather than failing the pipeline.
func OverridesFromEnv(prefix string, sch *schema.Schema) map[string]any {
	logger := log.WithComponent("env")
	overrides := make(map[string]any)
	if sch == nil {
		return overrides
	}

	for _, section := range sch.Sections() {
		rule, _ := sch.Rule(section)
		scalar, ok := rule.(*schema.ScalarRule)
		if !ok {
			continue
		}

		key := envKey(prefix, section)
		raw, set := os.LookupEnv(key)
		if !set {
			continue
		}

		value, err := parseScalar(raw, scalar.Type)
		if err != nil {
			logger.Warn().
				Str("key", key).
				Str("value", raw).
				Str("type", scalar.Type.String()).
				Msg("invalid value in environment variable, skipping override")
			continue
		}

		logger.Debug().
			Str("key", key).
			Str("section", section).
			Str("source", "environment").
			Msg("using environment override")
		overrides[section] = value
	}
	return overrides
}

// envKey builds PREFIX_SECTION, uppercasing the section name and folding
// anything outside [A-Z0-9] to underscores.
func envKey(prefix, section string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('_')
	for _, r := range strings.ToUpper(section) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// parseScalar converts a raw environment string into the Go value the
// section's declared type validates against.
func parseScalar(raw string, t schema.Type) (any, error) {
	switch t {
	case schema.TypeString:
		return raw, nil
	case schema.TypeInteger:
		return strconv.Atoi(raw)
	case schema.TypeFloat, schema.TypeNumber:
		return strconv.ParseFloat(raw, 64)
	case schema.TypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return true, nil
		case "false", "0", "no":
			return false, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", raw)
	default:
		// Untyped sections accept anything, so the raw string is fine.
		return raw, nil
	}
}
