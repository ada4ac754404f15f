package vpalloc

import (
	"fmt"
	"io"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Scenario is a replayable command script against a fresh allocator.
type Scenario struct {
	Capacity uint32   `yaml:"capacity"`
	Commands []string `yaml:"commands"`
}

// LoadScenario ...
func LoadScenario(path string) (*Scenario, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshaling scenario file: %w", err)
	}
	if s.Capacity == 0 {
		return nil, fmt.Errorf("scenario capacity must > 0")
	}
	return &s, nil
}

// Run executes the scenario commands in order against a fresh session,
// writing one reply per command to w. It stops at the first X.
func (s *Scenario) Run(w io.Writer) error {
	session := NewSession(s.Capacity)
	for _, line := range s.Commands {
		cmd, err := ParseCommand(line)
		if err != nil {
			return fmt.Errorf("command %q: %w", line, err)
		}
		if cmd.Kind == CommandExit {
			return nil
		}
		if _, err := fmt.Fprintln(w, session.Exec(cmd)); err != nil {
			return err
		}
	}
	return nil
}
