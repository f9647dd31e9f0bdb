// Package config loads oklabby's settings.
//
// Settings are layered, later layers winning:
//  1. Built-in defaults (see Default)
//  2. The user file ~/.config/oklabby/config.yaml, or an explicit --config path
//  3. Environment variables
//
// Command-line flags are applied on top by the cli package.
//
// # Configuration File
//
//	steps: 12        # default quantize step count, at least 2
//	output: json     # text or json
//	color: never     # auto, always or never
//	show_lab: true   # append the Oklab triplet to text output
//	log_level: info  # debug, info, warn or error
//
// # Environment Variables
//
//   - OKLABBY_STEPS, OKLABBY_OUTPUT, OKLABBY_COLOR, OKLABBY_SHOW_LAB, OKLABBY_LOG_LEVEL
//     override the matching file keys
//   - NO_COLOR, when set to any non-empty value, forces color to "never"
package config
