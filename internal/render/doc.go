// Package render prints oklab results for people and for programs.
//
// A Printer writes one line per color or per quantize step:
//
//	#636363	rgb( 99, 99, 99)
//	0.50:	#636363	rgb( 99, 99, 99)	lab(0.5000, 0.0000, 0.0000)
//
// In text mode the hex code is drawn as a swatch: the color itself is the
// background, with white text on dark colors (L < 0.5) and black text on
// light ones. Whether escape codes are emitted depends on the color mode:
//   - auto: follow the terminal behind the writer (none for pipes and files)
//   - always: force 24-bit color
//   - never: plain text
//
// In JSON mode each line is one JSON object, so output can be piped into jq
// or read line by line.
package render
