package boards

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, errors.Wrapf(err, "failed to read embedded file %s", filename)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, errors.Wrapf(err, "failed to parse JSON from %s", filename)
	}

	return result, nil
}
