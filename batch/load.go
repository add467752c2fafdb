package batch

import (
	"bytes"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML request file. Unknown keys are rejected; a request
// without an id gets its 1-based position as id.
func Load(fs afero.Fs, path string) ([]Request, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: read %s", path)
	}

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrapf(err, "batch: decode %s", path)
	}

	for i := range f.Requests {
		if f.Requests[i].ID == "" {
			f.Requests[i].ID = strconv.Itoa(i + 1)
		}
	}

	return f.Requests, nil
}
