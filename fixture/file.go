package fixture

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// Write stores r at path, replacing any previous file. The JSON goes to a
// temporary file in the same directory that is synced and renamed over path,
// so readers see either the old content or the complete new one. The parent
// directory must exist. The file mode is 0644 minus the process umask.
func Write(path string, r *Record) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("encode fixture: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}

// Read loads and validates the record stored at path.
func Read(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
