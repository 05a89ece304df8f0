// pkg/config/config.go
package config

import (
	"fmt"
	"sync"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// Global Koanf instance, initialized once at startup.
var (
	k    *koanf.Koanf
	once sync.Once
)

// InitGlobalConfig initializes the global Koanf instance.
// This should be called early in the application lifecycle, before Load.
func InitGlobalConfig() {
	once.Do(func() {
		k = koanf.New(".")
	})
}

// Manager handles loading and accessing application configuration.
type Manager struct {
	koanfInstance *koanf.Koanf
	currentConfig Config
	mu            sync.RWMutex
}

// NewManager creates a new Manager over the global Koanf instance.
func NewManager() *Manager {
	InitGlobalConfig()
	return &Manager{
		koanfInstance: k,
	}
}

// DefaultConfig returns a new Config struct populated with hardcoded default values.
// These serve as the baseline configuration if no other sources override them.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "warn",
		},
		Analysis: AnalysisConfig{
			LengthFloor: 20,
			TopN:        5,
			CatalogPath: "",
		},
		Output: OutputConfig{
			JSON:    false,
			NoColor: false,
			Quiet:   false,
		},
	}
}

// Load merges defaults and command-line flags in precedence order and
// populates the manager's currentConfig.
func (m *Manager) Load(flags *pflag.FlagSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	defaultCfgMap := DefaultConfigAsMap()
	if err := m.koanfInstance.Load(confmap.Provider(defaultCfgMap, "."), nil); err != nil {
		return fmt.Errorf("error loading hardcoded defaults into koanf: %w", err)
	}

	// Load command-line flags (highest precedence). Flags that back a config
	// field are stored under that field's key; all others keep their names.
	if flags != nil {
		flagKeys := map[string]string{
			"json":     "output.json",
			"no-color": "output.no_color",
			"quiet":    "output.quiet",
			"catalog":  "analysis.catalog_path",
		}
		provider := posflag.ProviderWithFlag(flags, ".", m.koanfInstance, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok {
				key = f.Name
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := m.koanfInstance.Load(provider, nil); err != nil {
			return fmt.Errorf("error loading command-line flags: %w", err)
		}

		// The repeatable -v flag is a count, not a level string; translate it
		if verbose := flags.Lookup("verbose"); verbose != nil {
			switch cast.ToInt(verbose.Value.String()) {
			case 0:
			case 1:
				_ = m.koanfInstance.Set("log.level", "info")
			default:
				_ = m.koanfInstance.Set("log.level", "debug")
			}
		}
	}

	var newCfg Config
	if err := m.koanfInstance.UnmarshalWithConf("", &newCfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshaling final config: %w", err)
	}
	m.currentConfig = newCfg

	return nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfgCopy := m.currentConfig
	return cfgCopy
}

// DefaultConfigAsMap converts the DefaultConfig struct to a map for
// Koanf's confmap.Provider, so Koanf knows all keys up front.
func DefaultConfigAsMap() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		"log.level": def.Log.Level,

		"analysis.length_floor": def.Analysis.LengthFloor,
		"analysis.top_n":        def.Analysis.TopN,
		"analysis.catalog_path": def.Analysis.CatalogPath,

		"output.json":     def.Output.JSON,
		"output.no_color": def.Output.NoColor,
		"output.quiet":    def.Output.Quiet,
	}
}
