// Package dataset loads dashboard issue datasets from YAML or JSON files and
// from the builtin set embedded in the binary.
package dataset

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dshills/sitewatch/internal/record"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Dataset is one dashboard's issue list with its metadata.
type Dataset struct {
	Name        string
	Title       string
	Description string
	Source      string
	Hash        string
	Records     []record.Record
}

type fileFormat struct {
	Name        string                   `yaml:"name"`
	Title       string                   `yaml:"title"`
	Description string                   `yaml:"description"`
	Records     []map[string]interface{} `yaml:"records"`
}

// Load reads a dataset file. JSON files are accepted as YAML.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read dataset", goerr.V("path", path))
	}
	return Parse(data, path)
}

// Parse decodes dataset bytes. source names the origin in errors and output.
func Parse(data []byte, source string) (*Dataset, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dataset", goerr.V("source", source))
	}

	ds := &Dataset{
		Name:        f.Name,
		Title:       f.Title,
		Description: strings.TrimSpace(f.Description),
		Source:      source,
		Hash:        fmt.Sprintf("sha256:%x", sha256.Sum256(data)),
		Records:     make([]record.Record, 0, len(f.Records)),
	}
	for i, m := range f.Records {
		r, err := record.FromMap(m)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid record",
				goerr.V("source", source),
				goerr.V("index", i))
		}
		ds.Records = append(ds.Records, r)
	}
	return ds, nil
}

// LoadBuiltin loads an embedded dataset by name.
func LoadBuiltin(name string) (*Dataset, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, goerr.Wrap(err, "unknown builtin dataset", goerr.V("name", name))
	}
	return Parse(data, "builtin:"+name)
}

// List returns the names of all builtin datasets, sorted.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list builtin datasets")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if n := e.Name(); strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
