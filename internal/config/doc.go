// Package config loads optional alignment profiles.
//
// A profile is a small file that supplies default values for the width and
// the alignment mode, so a team can share a house style without wrapping
// the align binary in a script. Profiles are only read when the user names
// one with --config; the default invocation reads no files.
//
// Two formats are accepted, chosen by file extension:
//   - YAML (.yaml, .yml), parsed with gopkg.in/yaml.v3
//   - JSON with comments (.json, .jsonc), cleaned with github.com/tidwall/jsonc
//     and then parsed with encoding/json
package config
