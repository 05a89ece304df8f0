// pkg/config/types.go
package config

// Config is the root configuration structure for the cipherscope CLI.
// It aggregates all other specific configuration structs.
type Config struct {
	Log      LogConfig      `description:"Logging configuration" koanf:"log"`
	Analysis AnalysisConfig `description:"Analysis configuration" koanf:"analysis"`
	Output   OutputConfig   `description:"Output configuration" koanf:"output"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level string `description:"Log level for cipherscope logs." koanf:"level"` // Log level (e.g., "debug", "info", "warn", "error")
}

// AnalysisConfig holds knobs for the identification pipeline.
type AnalysisConfig struct {
	LengthFloor int    `description:"Minimum letters before a short-input warning" koanf:"length_floor"`
	TopN        int    `description:"Default number of ranked candidates" koanf:"top_n"`
	CatalogPath string `description:"External cipher catalog JSON (empty = embedded)" koanf:"catalog_path"`
}

// OutputConfig holds terminal output configuration.
type OutputConfig struct {
	JSON    bool `description:"Emit machine-readable JSON" koanf:"json"`
	NoColor bool `description:"Disable ANSI colors" koanf:"no_color"`
	Quiet   bool `description:"Suppress summary lines" koanf:"quiet"`
}
