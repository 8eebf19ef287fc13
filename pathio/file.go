// Package pathio — file persistence for records.
package pathio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the record to path as indented JSON, creating or truncating
// the file. The file handle is closed on every path.
func Save(path string, rec Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pathio: create %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(rec); err != nil {
		return fmt.Errorf("pathio: encode %q: %w", path, err)
	}

	return nil
}

// Load reads a record from path. Syntactically invalid JSON is reported as
// ErrMalformedPath; structural validation is deferred to Decode.
func Load(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("pathio: open %q: %w", path, err)
	}
	defer f.Close()

	var rec Record
	if err = json.NewDecoder(f).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}

	return rec, nil
}
