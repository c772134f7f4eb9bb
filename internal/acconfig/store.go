package acconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Store persists a Catalog as a pretty-printed JSON array in one file.
// Saves overwrite the whole file; there is no locking.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the catalog from the store file. A missing file yields an
// empty catalog. The first malformed record aborts the whole load.
func (s *Store) Load() (*Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("open config store %q: %w", s.path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load config store %q: %w", s.path, err)
	}
	return c, nil
}

// Save overwrites the store file with every record of c.
func (s *Store) Save(c *Catalog) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open config store %q: %w", s.path, err)
	}
	if err := Encode(f, c); err != nil {
		_ = f.Close()
		return fmt.Errorf("write config store %q: %w", s.path, err)
	}
	return f.Close()
}

// Decode reads a JSON array of records.
func Decode(r io.Reader) (*Catalog, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		if errors.Is(err, io.EOF) {
			return NewCatalog(), nil
		}
		return nil, err
	}
	records := make([]*Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := Load(raw)
		if err != nil {
			var me *MalformedConfigError
			if errors.As(err, &me) {
				me.Index = i
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return NewCatalog(records...), nil
}

// Encode writes c as a JSON array indented by two spaces.
func Encode(w io.Writer, c *Catalog) error {
	records := c.Records()
	if records == nil {
		records = []*Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
