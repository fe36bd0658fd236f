package body

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// tableFile is the on-disk layout: one [[body]] array-of-tables entry per body
type tableFile struct {
	Bodies []Body `toml:"body"`
}

// Decode parses a TOML body table and validates it.
// Unknown keys are rejected so typos in field names do not silently zero a value.
func Decode(data []byte) (Table, error) {
	var f tableFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(err, "parse body table")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys in body table: %s", strings.Join(keys, ", "))
	}

	t := Table(f.Bodies)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads and decodes a TOML body table from path
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read body table %s", path)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}
