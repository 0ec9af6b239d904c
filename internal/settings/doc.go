// Package settings loads the runner's user-facing settings.
//
// Settings are layered: built-in defaults, then an optional HCL file, then
// TEXTADV_* environment variables. Command-line flags are applied last by
// the cli package.
//
// The HCL file holds a single `runner` block. String attributes may refer to
// the `home` and `cwd` variables:
//
//	runner {
//	  adventures_dir = "${home}/adventures"
//	  start_room     = "S"
//	  border         = "="
//	  timestamps     = true
//	}
package settings
