// Package config loads rangescope settings.
//
// Settings are resolved in three steps, each overriding the previous one:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. RANGESCOPE_* environment variables
//
// Command line flags are applied on top by the caller.
//
// # Live Reload
//
// Watcher follows the active config file with fsnotify and delivers freshly
// loaded configurations on a channel. Only the [overlay] section is applied
// while running; other sections take effect on restart.
//
// # Example
//
//	[plot]
//	x_scale = "linear"
//	initial_fraction = 0.25
//
//	[overlay]
//	fill_color = "#a0d8ff"
//	fill_alpha = 0.4
//	line_alpha = 1.0
package config
