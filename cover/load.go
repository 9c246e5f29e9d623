package cover

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Load reads the instance stored in the file at path.
// The format is chosen from the extension: ".json" or ".mps", in any case.
func Load(path string) (*Instance, error) {
	var parse func(f *os.File) (*Instance, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parse = func(f *os.File) (*Instance, error) { return Decode(f) }
	case ".mps":
		parse = func(f *os.File) (*Instance, error) { return ReadMPS(f) }
	default:
		return nil, &InputError{Path: path, Err: errors.Errorf("invalid file format: extension should be .json or .mps, not %q", filepath.Ext(path))}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: errors.Wrap(err, "could not open file")}
	}
	defer f.Close()
	ins, err := parse(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return ins, nil
}
