// Package routine defines exercise configurations and the two storage
// generations of the Routine.Exercises blob.
//
// Generation 1 stored a plain comma-separated list of exercise names
// ("Bench Press,Flyes,Pushups"). Generation 2 stores a JSON array of
// ExerciseConfig objects. Writers always emit generation 2; readers must
// accept both forever, because routines created before the structured
// format existed are still in users' databases.
package routine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExerciseConfig is one exercise inside a routine template. Immutable once
// the routine is saved.
type ExerciseConfig struct {
	Name            string `json:"name"`
	TargetSets      int    `json:"targetSets"`
	TargetReps      string `json:"targetReps"` // free text, allows ranges like "8-12"
	RestTimeSeconds int    `json:"restTimeSeconds"`
	Note            string `json:"note,omitempty"`
}

// Parsed is the decoded form of a Routine.Exercises blob. Exactly one of
// Configs or Names is populated: Configs for the structured generation,
// Names for the legacy comma-separated generation.
type Parsed struct {
	Configs []ExerciseConfig
	Names   []string
	Legacy  bool
}

// Parse decodes an exercises blob from either generation. Decode failure of
// the structured form is not an error: it means the blob predates the
// structured format, so the legacy decoder takes over. Parse itself never
// fails.
func Parse(blob string) Parsed {
	var configs []ExerciseConfig
	if err := json.Unmarshal([]byte(blob), &configs); err == nil && configs != nil {
		return Parsed{Configs: configs}
	}

	var names []string
	for _, token := range strings.Split(blob, ",") {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}
	return Parsed{Names: names, Legacy: true}
}

// Encode serializes exercise configs into the structured blob format.
func Encode(configs []ExerciseConfig) (string, error) {
	data, err := json.Marshal(configs)
	if err != nil {
		return "", fmt.Errorf("encoding exercise configs: %w", err)
	}
	return string(data), nil
}

// ConfigsFromNames lifts bare exercise names into minimal configs so the
// quick create-routine path can still write the structured format. One
// target set and no rep target, matching what expanding a legacy routine
// would have produced.
func ConfigsFromNames(names []string) []ExerciseConfig {
	configs := make([]ExerciseConfig, 0, len(names))
	for _, name := range names {
		configs = append(configs, ExerciseConfig{Name: name, TargetSets: 1})
	}
	return configs
}
