package sql

import (
	"io"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// Settings are the engine knobs an expression DAG carries for its executor
// and compiler. The DAG stores them; the executor enforces the caps.
type Settings struct {
	// MaxTemporaryColumns caps the number of columns alive at once while
	// executing a DAG. Zero means no limit.
	MaxTemporaryColumns uint64 `yaml:"max_temporary_columns"`
	// MaxTemporaryNonConstColumns caps the non constant columns alive at
	// once while executing a DAG. Zero means no limit.
	MaxTemporaryNonConstColumns uint64 `yaml:"max_temporary_non_const_columns"`
	// CompileExpressions enables sharing prepared functions through the
	// compiled expression cache.
	CompileExpressions bool `yaml:"compile_expressions"`
	// MinCountToCompileExpression is the number of times an expression
	// shape must be seen before its prepared function is cached.
	MinCountToCompileExpression uint64 `yaml:"min_count_to_compile_expression"`
}

// DefaultSettings returns the settings used when a context does not carry
// explicit ones.
func DefaultSettings() Settings {
	return Settings{
		MaxTemporaryColumns:         0,
		MaxTemporaryNonConstColumns: 1024,
		CompileExpressions:          false,
		MinCountToCompileExpression: 3,
	}
}

// SettingsFromYAML reads settings from YAML. Absent keys keep their default
// values.
func SettingsFromYAML(r io.Reader) (Settings, error) {
	settings := DefaultSettings()

	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return Settings{}, err
	}

	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}
