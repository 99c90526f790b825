package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/fortune-wheel/internal/wheel"
)

var ErrFormat = errors.New("config: malformed items file")

// DefaultItems is the wheel used when no items file is given.
var DefaultItems = []wheel.Item{
	{ID: "1", Text: "Refactor the oldest function you touched this week"},
	{ID: "2", Text: "Write the test you have been putting off"},
	{ID: "3", Text: "Delete one dead feature flag"},
	{ID: "4", Text: "Review a pull request outside your area"},
	{ID: "5", Text: "Update a stale README section"},
	{ID: "6", Text: "Pair with a teammate for thirty minutes"},
	{ID: "7", Text: "Profile the slowest endpoint"},
	{ID: "8", Text: "Take a real break"},
}

type itemsFile struct {
	Items []wheel.Item `yaml:"items"`
}

// LoadItems reads the item list from a YAML file of the form
//
//	items:
//	  - id: "1"
//	    text: "..."
//
// An empty path selects DefaultItems. The list is validated before it is returned.
func LoadItems(path string) ([]wheel.Item, error) {
	if path == "" {
		items := make([]wheel.Item, len(DefaultItems))
		copy(items, DefaultItems)
		return items, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}
	return ParseItems(data)
}

func ParseItems(data []byte) ([]wheel.Item, error) {
	var f itemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := wheel.Validate(f.Items); err != nil {
		return nil, fmt.Errorf("invalid items: %w", err)
	}
	return f.Items, nil
}
