// FILE: lixenwraith/bwdebug/default.go
package bwdebug

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger

// Default returns the logger used by the package-level functions
func Default() *Logger {
	return defaultLogger
}

// ApplyConfig applies a configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyOverride applies key=value overrides to the default logger's configuration
func ApplyOverride(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// LoadConfig loads the default logger configuration from a file with optional key=value overrides
func LoadConfig(path string, overrides []string) error {
	return defaultLogger.LoadConfig(path, overrides)
}

// GetConfig returns a copy of the default logger configuration
func GetConfig() *Config {
	return defaultLogger.GetConfig()
}

// Log formats an entry and appends it to the selected output file
func Log(e Entry, opts ...Option) {
	defaultLogger.log(e, 2, opts)
}

// Dump logs v as a value dump
func Dump(v any, opts ...Option) {
	defaultLogger.log(Value(v), 2, opts)
}

// Section logs a section header
func Section(text string, opts ...Option) {
	defaultLogger.log(Header(text), 2, opts)
}

// Here logs a section header naming the caller's location
func Here(opts ...Option) {
	defaultLogger.log(Header(""), 2, opts)
}

// TimerStart starts (or restarts) a named timer
func TimerStart(label string) {
	defaultLogger.TimerStart(label)
}

// TimerEnd stops a named timer and logs the elapsed milliseconds
func TimerEnd(label string, opts ...Option) {
	defaultLogger.timerEnd(label, 2, opts)
}
