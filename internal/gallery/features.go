package gallery

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed features.yaml
var featuresYAML []byte

// featureRow is one row of the features demo table.
type featureRow struct {
	Name      string `yaml:"name"`
	Operation string `yaml:"operation"`
	Host      string `yaml:"host"`
	Escapes   bool   `yaml:"escapes"`
}

// loadFeatures parses the embedded dataset.
func loadFeatures() ([]featureRow, error) {
	var doc struct {
		Features []featureRow `yaml:"features"`
	}
	if err := yaml.Unmarshal(featuresYAML, &doc); err != nil {
		return nil, err
	}
	return doc.Features, nil
}
