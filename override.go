// FILE: lixenwraith/bwdebug/override.go
package bwdebug

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current configuration.
// Each override should be in the format "key=value", keys are the toml names of Config fields.
// The configuration is cloned before modification.
//
// Example:
//
//	dbg := bwdebug.NewLogger()
//	err := dbg.ApplyOverride(
//	    "primary_file=/tmp/debug/output.log",
//	    "output_method=dump",
//	    "run_timeout_s=10",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	if err := applyOverrideStrings(cfg, overrides); err != nil {
		return err
	}

	return l.ApplyConfig(cfg)
}

// applyOverrideStrings applies all overrides to cfg, collecting every failure
func applyOverrideStrings(cfg *Config, overrides []string) error {
	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	return combineConfigErrors(errors)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString(errPrefix + "multiple configuration errors:")
	for i, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), errPrefix)
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField parses a string value into the Config field tagged with key.
func applyConfigField(cfg *Config, key, value string) error {
	field, ok := configFields(cfg)[key]
	if !ok {
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	switch field.Kind() {
	case reflect.String:
		if isColorCodeKey(key) {
			value = unescapeColorCode(value)
		}
		field.SetString(value)

	case reflect.Int64:
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for %s '%s': %w", key, value, err)
		}
		field.SetInt(intVal)

	case reflect.Float64:
		floatVal, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmtErrorf("invalid float value for %s '%s': %w", key, value, err)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
		}
		field.SetBool(boolVal)

	default:
		return fmtErrorf("unsupported field type for %s: %v", key, field.Kind())
	}

	return nil
}

// isColorCodeKey reports keys holding ANSI sequences
func isColorCodeKey(key string) bool {
	return strings.HasPrefix(key, "color_") && strings.HasSuffix(key, "_code")
}

// unescapeColorCode turns the literal escape spellings used on command lines and in
// env files ("\033[32m", "\e[32m", "\x1b[32m") into the ESC byte
func unescapeColorCode(value string) string {
	for _, esc := range []string{`\033`, `\e`, `\x1b`, `\x1B`, `\u001b`} {
		value = strings.ReplaceAll(value, esc, "\033")
	}
	return value
}
