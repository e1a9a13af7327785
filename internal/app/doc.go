// Package app wires config location and resolution into the Settings the
// workstyle commands consume.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Load()     │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Locator.Locate()        find or seed config.toml
//	       ├─────> config.Resolver.IconMappings() ordered rules or defaults
//	       └─────> config.Resolver.FallbackIcon() [other].fallback_icon or default
//
// The two resolutions are independent: a broken rule table does not discard
// a valid fallback_icon, and the other way round.
//
// # Error Handling
//
// Fatal (returned from Load):
//   - The config directory or seed file cannot be created
//
// Degraded (logged, defaults used):
//   - The platform has no user config directory
//   - The file cannot be read, is not valid TOML, or holds non-string rules
package app
