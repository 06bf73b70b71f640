// Package domain contains the core model for gotemplate: the bounded counter,
// the weekday enumeration, the shared position and the pet record.
//
// The domain does not depend on YAML parsing, the terminal, or the filesystem.
// Infra/adapters map into/from these types.
package domain
