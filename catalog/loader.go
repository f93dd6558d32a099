package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load returns the validated catalog for this process. An empty path means
// the built-in catalog; otherwise the file at path fully replaces it.
func Load(path string) (Catalog, error) {
	if path == "" {
		cat := BuiltIn()
		if err := cat.Validate(); err != nil {
			return Catalog{}, err
		}
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
