package buffer

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const fileMode = 0o644

// Load reads path from fs into a new document.
func Load(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: %w", path, ErrInvalidEncoding)
	}
	return New(string(data)), nil
}

// Load replaces the document content with path. On error the current
// content is left untouched.
func (d *Document) Load(fs afero.Fs, path string) error {
	loaded, err := Load(fs, path)
	if err != nil {
		return err
	}
	d.lines = loaded.lines
	d.version++
	return nil
}

// Save writes Text to path in a single write and returns the byte count.
func (d *Document) Save(fs afero.Fs, path string) (int, error) {
	data := []byte(d.Text())
	if err := afero.WriteFile(fs, path, data, fileMode); err != nil {
		return 0, fmt.Errorf("save %s: %w", path, err)
	}
	return len(data), nil
}
