package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load reads and validates the scenario file at path.
func Load(path string) (*Scenario, error) {
	var s Scenario
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("scenario: decoding %s: %w", path, err)
	}

	return finish(&s, md)
}

// Decode reads and validates a scenario from r.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("scenario: decoding: %w", err)
	}

	return finish(&s, md)
}

func finish(s *Scenario, md toml.MetaData) (*Scenario, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	return s, nil
}
