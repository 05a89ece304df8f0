package config

import (
	"sync"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// Helper to reset global variables for testing
func resetGlobalConfig() {
	k = nil
	once = sync.Once{}
}

func newTestFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.CountP("verbose", "v", "")
	flags.Bool("no-color", false, "")
	flags.Bool("quiet", false, "")
	flags.String("catalog", "", "")
	return flags
}

func TestInitGlobalConfig_InitializesKoanfOnce(t *testing.T) {
	resetGlobalConfig()
	InitGlobalConfig()
	assert.NotNil(t, k, "Global koanf instance should be initialized")
}

func TestInitGlobalConfig_IsIdempotent(t *testing.T) {
	resetGlobalConfig()
	InitGlobalConfig()
	firstInstance := k
	InitGlobalConfig()
	secondInstance := k
	assert.Equal(t, firstInstance, secondInstance, "Koanf instance should not change on repeated InitGlobalConfig calls")
}

func TestNewManager_InitializesManagerWithGlobalKoanf(t *testing.T) {
	resetGlobalConfig()
	manager := NewManager()
	assert.NotNil(t, manager, "Manager should not be nil")
	assert.NotNil(t, manager.koanfInstance, "Manager's koanfInstance should not be nil")
	assert.Equal(t, k, manager.koanfInstance, "Manager's koanfInstance should use the global Koanf instance")
}

func TestNewManager_MultipleManagersShareGlobalKoanf(t *testing.T) {
	resetGlobalConfig()
	manager1 := NewManager()
	manager2 := NewManager()
	assert.Equal(t, manager1.koanfInstance, manager2.koanfInstance, "All managers should share the same global Koanf instance")
}

func TestDefaultConfig_ReturnsExpectedDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Log.Level, "Default log level should be 'warn'")
	assert.Equal(t, 20, cfg.Analysis.LengthFloor, "Default length floor should be 20")
	assert.Equal(t, 5, cfg.Analysis.TopN, "Default candidate count should be 5")
	assert.Equal(t, "", cfg.Analysis.CatalogPath, "Default catalog path should be empty")
	assert.False(t, cfg.Output.JSON, "JSON output should default to off")
}

func TestManager_Load_LoadsDefaultsWhenNoFlags(t *testing.T) {
	resetGlobalConfig()
	manager := NewManager()
	err := manager.Load(nil)
	assert.NoError(t, err, "Load should not return error when loading defaults")
	cfg := manager.Get()
	assert.Equal(t, "warn", cfg.Log.Level, "Default log level should be 'warn'")
	assert.Equal(t, 20, cfg.Analysis.LengthFloor, "Default length floor should be 20")
}

func TestManager_Load_SingleVerboseSetsInfo(t *testing.T) {
	resetGlobalConfig()
	manager := NewManager()
	flags := newTestFlagSet()
	assert.NoError(t, flags.Parse([]string{"-v"}))
	err := manager.Load(flags)
	assert.NoError(t, err, "Load should not return error with verbose flag")
	assert.Equal(t, "info", manager.Get().Log.Level, "One -v should raise the level to info")
}

func TestManager_Load_RepeatedVerboseSetsDebug(t *testing.T) {
	resetGlobalConfig()
	manager := NewManager()
	flags := newTestFlagSet()
	assert.NoError(t, flags.Parse([]string{"-vvv"}))
	err := manager.Load(flags)
	assert.NoError(t, err, "Load should not return error with repeated verbose flag")
	assert.Equal(t, "debug", manager.Get().Log.Level, "Two or more -v should raise the level to debug")
}

func TestManager_Load_FlagOverridesDefault(t *testing.T) {
	resetGlobalConfig()
	manager := NewManager()
	flags := newTestFlagSet()
	_ = flags.Set("quiet", "true")
	err := manager.Load(flags)
	assert.NoError(t, err, "Load should not return error when loading with flags")
	assert.True(t, manager.Get().Output.Quiet, "Flag should override quiet default")
}

func TestManager_Get_ReturnsCopy(t *testing.T) {
	resetGlobalConfig()
	manager := NewManager()
	_ = manager.Load(nil)

	cfg := manager.Get()
	cfg.Analysis.LengthFloor = 999
	assert.NotEqual(t, 999, manager.Get().Analysis.LengthFloor, "Mutating the returned copy should not affect the manager")
}

func TestDefaultConfigAsMap_MirrorsStruct(t *testing.T) {
	def := DefaultConfig()
	asMap := DefaultConfigAsMap()

	assert.Equal(t, def.Log.Level, asMap["log.level"])
	assert.Equal(t, def.Analysis.LengthFloor, asMap["analysis.length_floor"])
	assert.Equal(t, def.Analysis.TopN, asMap["analysis.top_n"])
	assert.Equal(t, def.Output.Quiet, asMap["output.quiet"])
}
