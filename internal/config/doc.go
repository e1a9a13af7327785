// Package config locates and reads the workstyle configuration file.
//
// # Overview
//
// Workstyle reads one TOML file holding an ordered list of icon rules and an
// optional [other] table:
//
//	firefox = "🌍"
//	code = "💻"
//
//	[other]
//	fallback_icon = " "
//
// Rule order matters: the first rule matching a window name decides its icon,
// so the rules are returned as a mapping.Mapping in file order rather than a
// Go map.
//
// # Configuration Discovery
//
// Locator.Locate resolves the file in this order:
//
//  1. If Locator.Path is set, use it (tilde expansion applies)
//  2. Otherwise use <user config dir>/workstyle/config.toml
//  3. Create the directory and seed the file from the embedded default
//     configuration when either is missing
//
// A platform without a user config directory yields ErrMissingConfigDir.
// Failing to create the directory or seed the file is returned as an I/O
// error. Once the file exists Locate performs no writes.
//
// # Resolution
//
// Resolver.IconMappings and Resolver.FallbackIcon each read the file afresh
// and never fail:
//
//   - Location unavailable: defaults, logged at debug level
//   - Open, read, parse or decode failure: defaults, logged as an error with
//     the file path
//   - Success: the user's values, used wholesale and never merged with the
//     defaults; an empty rule table is valid
//
// Resolver.Check runs the same pipeline without the fallback so the CLI can
// report what is wrong with a file.
//
// # Error Handling
//
// Nothing touching the user file can stop workstyle from starting. The
// embedded defaults cannot fail to decode; package assets panics if they do.
package config
