package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"elevhtn/internal/domain"
)

// File is the on-disk shape of a scenario.
type File struct {
	Name         string `yaml:"name"`
	Floors       int    `yaml:"floors"`
	People       int    `yaml:"people"`
	PersonFloors []int  `yaml:"person_floors"`
	Destinations []int  `yaml:"destinations,omitempty"`
}

// Request converts the scenario into a build request.
func (f File) Request() domain.BuildRequest {
	return domain.BuildRequest{
		Name:         domain.ProblemName(f.Name),
		Floors:       f.Floors,
		People:       f.People,
		PersonFloors: append([]int(nil), f.PersonFloors...),
		Destinations: append([]int(nil), f.Destinations...),
	}
}

// Parse decodes a scenario payload. Unknown keys are rejected. Range checks
// are left to the builder.
func Parse(data []byte) (File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return File{}, fmt.Errorf("scenario: %w: payload is empty", domain.ErrInvalidConfiguration)
	}
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("scenario: %w: decode: %v", domain.ErrInvalidConfiguration, err)
	}
	return f, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
