// FILE: lixenwraith/bwdebug/config.go
package bwdebug

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all debug logger configuration values
type Config struct {
	// Files
	PrimaryFile   string `toml:"primary_file"`
	SecondaryFile string `toml:"secondary_file"`
	StateFile     string `toml:"state_file"`     // JSON run state sidecar
	DefaultStream int64  `toml:"default_stream"` // 1 or 2

	// Value representation
	OutputMethod   string `toml:"output_method"`   // "dump", "print", "export", "json" or "yaml"
	StripTags      bool   `toml:"strip_tags"`      // Strip markup from dump output
	SanitizeValues bool   `toml:"sanitize_values"` // Remove control sequences from rendered values

	// Section headers
	TabHeaders      bool   `toml:"tab_headers"`
	HeaderMarker    string `toml:"header_marker"`
	HeaderDelimiter string `toml:"header_delimiter"`

	// Run header
	RunHeader       bool   `toml:"run_header"`
	RunHeaderRandom bool   `toml:"run_header_random"` // Two digit random disambiguator
	RunHeaderID     bool   `toml:"run_header_id"`     // Append run id
	TimestampFormat string `toml:"timestamp_format"`

	// Spacing
	BlankLinesBetween   int64   `toml:"blank_lines_between"`
	BlankLinesBeforeRun int64   `toml:"blank_lines_before_run"`
	RunTimeoutS         float64 `toml:"run_timeout_s"` // Idle seconds that start a new run, 0 disables
	ShowIdleGap         bool    `toml:"show_idle_gap"`

	// Colors
	Color              bool   `toml:"color"` // Master switch
	ColorRunHeader     bool   `toml:"color_run_header"`
	ColorRunHeaderCode string `toml:"color_run_header_code"`
	ColorSection       bool   `toml:"color_section"`
	ColorSectionCode   string `toml:"color_section_code"`
	ColorBody          bool   `toml:"color_body"`
	ColorBodyCode      string `toml:"color_body_code"`
	ColorCaller        bool   `toml:"color_caller"`
	ColorCallerCode    string `toml:"color_caller_code"`
	ColorMemory        bool   `toml:"color_memory"`
	ColorMemoryCode    string `toml:"color_memory_code"`
	ColorTimer         bool   `toml:"color_timer"`
	ColorTimerCode     string `toml:"color_timer_code"`
	ColorTrace         bool   `toml:"color_trace"`
	ColorTraceCode     string `toml:"color_trace_code"`
	ColorLabel         bool   `toml:"color_label"`
	ColorLabelCode     string `toml:"color_label_code"`

	// Context
	ShowCaller bool  `toml:"show_caller"`
	ShowMemory bool  `toml:"show_memory"`
	TraceDepth int64 `toml:"trace_depth"` // Max frames in a trace (0-10)

	// Console
	EchoStdout bool `toml:"echo_stdout"` // Mirror output to stdout

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	// Files
	PrimaryFile:   "./logs/output.log",
	SecondaryFile: "./logs/output2.log",
	StateFile:     "./logs/state.json",
	DefaultStream: int64(StreamPrimary),

	// Value representation
	OutputMethod:   MethodPrint,
	StripTags:      true,
	SanitizeValues: true,

	// Section headers
	TabHeaders:      true,
	HeaderMarker:    "**",
	HeaderDelimiter: "#",

	// Run header
	RunHeader:       true,
	RunHeaderRandom: true,
	RunHeaderID:     false,
	TimestampFormat: "15:04:05",

	// Spacing
	BlankLinesBetween:   1,
	BlankLinesBeforeRun: 5,
	RunTimeoutS:         3,
	ShowIdleGap:         false,

	// Colors
	Color:              true,
	ColorRunHeader:     true,
	ColorRunHeaderCode: ColorGreen,
	ColorSection:       true,
	ColorSectionCode:   ColorYellow,
	ColorBody:          true,
	ColorBodyCode:      ColorCyan,
	ColorCaller:        true,
	ColorCallerCode:    ColorBlue,
	ColorMemory:        true,
	ColorMemoryCode:    ColorMagenta,
	ColorTimer:         true,
	ColorTimerCode:     ColorBrightGreen,
	ColorTrace:         true,
	ColorTraceCode:     ColorGrey,
	ColorLabel:         true,
	ColorLabelCode:     ColorBoldWhite,

	// Context
	ShowCaller: true,
	ShowMemory: false,
	TraceDepth: 5,

	// Console
	EchoStdout: false,

	// Internal error handling
	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from the [bwdebug] table of a TOML file
// A missing file yields the defaults
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct("bwdebug.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, "bwdebug.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
		if isColorCodeKey(tomlTag) {
			v.Field(i).SetString(unescapeColorCode(v.Field(i).String()))
		}
	}

	return nil
}

// configFields maps toml keys to settable struct fields
func configFields(cfg *Config) map[string]reflect.Value {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}
	return fieldMap
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	fieldMap := configFields(cfg)

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		case Stream:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Float64:
		switch v := value.(type) {
		case float64:
			field.SetFloat(v)
		case int64:
			field.SetFloat(float64(v))
		case int:
			field.SetFloat(float64(v))
		default:
			return fmt.Errorf("expected float64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// normalize folds out-of-range values back to usable ones, logging never fails on config
func (c *Config) normalize() {
	if c.DefaultStream != int64(StreamPrimary) && c.DefaultStream != int64(StreamSecondary) {
		c.DefaultStream = defaultConfig.DefaultStream
	}

	switch c.OutputMethod {
	case MethodDump, MethodPrint, MethodExport, MethodJSON, MethodYAML:
	default:
		c.OutputMethod = defaultConfig.OutputMethod
	}

	if strings.TrimSpace(c.PrimaryFile) == "" {
		c.PrimaryFile = defaultConfig.PrimaryFile
	}
	if strings.TrimSpace(c.SecondaryFile) == "" {
		c.SecondaryFile = defaultConfig.SecondaryFile
	}
	if strings.TrimSpace(c.StateFile) == "" {
		c.StateFile = defaultConfig.StateFile
	}
	if c.HeaderMarker == "" {
		c.HeaderMarker = defaultConfig.HeaderMarker
	}
	if c.HeaderDelimiter == "" {
		c.HeaderDelimiter = defaultConfig.HeaderDelimiter
	}
	if strings.TrimSpace(c.TimestampFormat) == "" {
		c.TimestampFormat = defaultConfig.TimestampFormat
	}

	if c.BlankLinesBetween < 0 {
		c.BlankLinesBetween = 0
	}
	if c.BlankLinesBeforeRun < 0 {
		c.BlankLinesBeforeRun = 0
	}
	if c.RunTimeoutS < 0 {
		c.RunTimeoutS = 0
	}
	if c.TraceDepth < 0 {
		c.TraceDepth = 0
	}
	if c.TraceDepth > maxTraceDepth {
		c.TraceDepth = maxTraceDepth
	}
}

// colorSetting returns the toggle and code configured for a category
func (c *Config) colorSetting(category string) (bool, string) {
	switch category {
	case CategoryRunHeader:
		return c.ColorRunHeader, c.ColorRunHeaderCode
	case CategorySection:
		return c.ColorSection, c.ColorSectionCode
	case CategoryBody:
		return c.ColorBody, c.ColorBodyCode
	case CategoryCaller:
		return c.ColorCaller, c.ColorCallerCode
	case CategoryMemory:
		return c.ColorMemory, c.ColorMemoryCode
	case CategoryTimer:
		return c.ColorTimer, c.ColorTimerCode
	case CategoryTrace:
		return c.ColorTrace, c.ColorTraceCode
	case CategoryLabel:
		return c.ColorLabel, c.ColorLabelCode
	default:
		return false, ""
	}
}

// colorFor returns the color code for a category, or "" when coloring is off for it
func (c *Config) colorFor(category string) string {
	if !c.Color {
		return ""
	}
	enabled, code := c.colorSetting(category)
	if !enabled {
		return ""
	}
	return code
}

// ColorCode returns the configured color sequence for a category regardless of toggles
func (c *Config) ColorCode(category string) string {
	_, code := c.colorSetting(category)
	return code
}

// ColorEnabled reports whether output of a category is colorized
func (c *Config) ColorEnabled(category string) bool {
	return c.colorFor(category) != ""
}

// streamPath returns the file path for a stream
func (c *Config) streamPath(s Stream) string {
	if s == StreamSecondary {
		return c.SecondaryFile
	}
	return c.PrimaryFile
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
