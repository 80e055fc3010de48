// Package config loads the settings of a modal editing session.
//
// Settings come from three layers, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. MODAL_* environment variables
//
// Example file:
//
//	[log]
//	level = "debug"
//
//	[history]
//	jump_capacity = 100
//	change_capacity = 100
//
//	[expression]
//	enabled = true
//	timeout = "250ms"
//
// # Sub-packages
//
//   - loader: file and environment loading into generic maps
//   - watcher: file change notification for live reload
package config
