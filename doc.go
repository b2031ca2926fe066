// SPDX-License-Identifier: MIT

// Package strictconf loads YAML settings files, validates them against a
// schema, applies runtime overrides, and converts the result into a typed
// settings struct.
//
// The pipeline runs in four stages, each failing fast:
//
//  1. Read the settings file into a generic mapping (package yamlio).
//  2. Validate the mapping against a schema rule tree (package schema).
//  3. Apply overrides (environment first, explicit values last) and
//     re-validate. Overrides replace top-level keys wholesale; the caller's
//     mapping is never mutated.
//  4. Decode the mapping onto the target struct, matching keys by the conf
//     tag or case-insensitive field name.
//
// [Extract] runs the whole pipeline; [Parse], [Override] and [Convert]
// expose the stages individually. [Layer] and [ParseLayered] deep-merge
// several settings documents (defaults, site, local) before validation,
// which is deliberately distinct from Override's shallow replacement.
//
// Everything is synchronous: no goroutines, no watchers, no caching. A
// failed call returns exactly one of *FileError, *ValidationError or
// *ConversionError and never a partial result.
package strictconf
