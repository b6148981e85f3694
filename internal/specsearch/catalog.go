// Package specsearch implements the specification oracle: keyword search over
// a catalog of standard spec sections, with recent queries persisted locally.
package specsearch

import (
	_ "embed"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Section is one standard specification section in the catalog.
type Section struct {
	Number   string   `yaml:"number" json:"number"`
	Title    string   `yaml:"title" json:"title"`
	Division string   `yaml:"division" json:"division"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Summary  string   `yaml:"summary" json:"summary"`
}

// LoadCatalog returns the section catalog. When path is empty the embedded
// default catalog is used.
func LoadCatalog(path string) ([]Section, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "specsearch: read catalog %s", path)
		}
	}

	var sections []Section
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, eris.Wrap(err, "specsearch: parse catalog")
	}
	return sections, nil
}
