// SPDX-License-Identifier: MIT

// Package schema parses validation schemas into a typed rule tree and checks
// settings mappings against them.
//
// A schema file is a YAML mapping whose top-level keys are section names and
// whose values are rule specs. A rule spec is a mapping of directives:
//
//   - type: string, integer, float, number, boolean, dict or list
//     (float and number both accept integral values; booleans never
//     satisfy a numeric type; omitting type accepts any value)
//   - required: the field must be present in the settings
//   - nullable: an explicit null is accepted
//   - allowed: list of permitted scalar values
//   - min, max: numeric bounds (numeric types only)
//   - minlength, maxlength: string length bounds, or item-count bounds
//     on lists
//   - schema: for dict rules a mapping of field names to rule specs, for
//     list rules a single rule spec every element must satisfy
//   - allow_unknown: for dict rules, tolerate fields the field spec does
//     not name
//
// Parsing walks the YAML node tree directly, so section and field order are
// preserved exactly as declared and duplicate keys are rejected. Anchors may
// be shared between rules; a spec that reaches itself through an anchor is
// rejected. Unknown or misplaced directives fail at load time, not at first
// validation.
//
// The main entry points are [Load] and [Parse] to build a [Schema], and
// [Validate] to check a settings mapping against one. Validation failures are
// reported as a [ValidationError] carrying one [Violation] per broken rule.
package schema
