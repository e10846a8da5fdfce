package landmark

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed testdata/samples/*.json
var samplesFS embed.FS

// LoadSample loads a single recorded hand observation by name.
func LoadSample(name string) (Sample, error) {
	data, err := samplesFS.ReadFile("testdata/samples/" + name + ".json")
	if err != nil {
		return Sample{}, fmt.Errorf("load sample %s: %w", name, err)
	}

	var sample Sample
	if err := json.Unmarshal(data, &sample); err != nil {
		return Sample{}, fmt.Errorf("decode sample %s: %w", name, err)
	}
	return sample, nil
}

// LoadSequence loads a recorded sequence of observations for driving
// the mock detector through a gesture.
func LoadSequence(name string) ([]Sample, error) {
	data, err := samplesFS.ReadFile("testdata/samples/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("load sequence %s: %w", name, err)
	}

	var samples []Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("decode sequence %s: %w", name, err)
	}
	return samples, nil
}
