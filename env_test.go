// SPDX-License-Identifier: MIT

package strictconf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const envSchema = `
name:
  type: string
speed:
  type: float
retries:
  type: integer
debug:
  type: boolean
log-level:
  type: string
guidance:
  type: dict
`

func TestOverridesFromEnv_TypedParsing(t *testing.T) {
	sch := mustSchema(t, envSchema)

	t.Setenv("SHIP_NAME", "mariner")
	t.Setenv("SHIP_SPEED", "12.5")
	t.Setenv("SHIP_RETRIES", "3")
	t.Setenv("SHIP_DEBUG", "yes")
	t.Setenv("SHIP_LOG_LEVEL", "debug")

	got := OverridesFromEnv("SHIP", sch)

	want := map[string]any{
		"name":      "mariner",
		"speed":     12.5,
		"retries":   3,
		"debug":     true,
		"log-level": "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestOverridesFromEnv_SkipsUnparsableAndContainers(t *testing.T) {
	sch := mustSchema(t, envSchema)

	t.Setenv("SHIP_SPEED", "full-ahead") // not a float: skipped with a warning
	t.Setenv("SHIP_GUIDANCE", "los")     // dict section: no flat encoding

	got := OverridesFromEnv("SHIP", sch)
	if len(got) != 0 {
		t.Errorf("overrides = %v, want none", got)
	}
}

func TestOverridesFromEnv_UnsetAndNilSchema(t *testing.T) {
	if got := OverridesFromEnv("SHIP", mustSchema(t, envSchema)); len(got) != 0 {
		t.Errorf("no variables set, but got %v", got)
	}
	if got := OverridesFromEnv("SHIP", nil); len(got) != 0 {
		t.Errorf("nil schema must yield no overrides, got %v", got)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{"speed", "SHIP_SPEED"},
		{"log-level", "SHIP_LOG_LEVEL"},
		{"max.sessions", "SHIP_MAX_SESSIONS"},
		{"v2", "SHIP_V2"},
	}

	for _, tt := range tests {
		if got := envKey("SHIP", tt.section); got != tt.want {
			t.Errorf("envKey(SHIP, %q) = %q, want %q", tt.section, got, tt.want)
		}
	}
}
