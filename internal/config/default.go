package config

import (
	_ "embed"
)

//go:embed default.yaml
var defaultScenario []byte

// DefaultName is the name Default reports in errors.
const DefaultName = "default.yaml"

// Default returns the built-in demo scenario.
func Default() *Scenario {
	s, err := Parse(DefaultName, defaultScenario)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultYAML returns the source of the built-in scenario.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultScenario...)
}
