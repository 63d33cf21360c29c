package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	return decode[T](filename, content)
}

// LoadFile reads and unmarshals a JSON file from disk.
func LoadFile[T any](path string) (T, error) {
	var result T

	content, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return decode[T](path, content)
}

// decode unmarshals content, rejecting unknown fields.
func decode[T any](name string, content []byte) (T, error) {
	var result T

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", name, err)
	}

	return result, nil
}
