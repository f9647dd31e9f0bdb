package config

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Color modes for terminal swatches.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every setting the commands read.
type Config struct {
	Steps    int    `yaml:"steps"`
	Output   string `yaml:"output"`
	Color    string `yaml:"color"`
	ShowLab  bool   `yaml:"show_lab"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Steps:    8,
		Output:   OutputText,
		Color:    ColorAuto,
		ShowLab:  false,
		LogLevel: "warn",
	}
}
