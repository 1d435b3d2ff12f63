package fields

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadLabels reads an ordered label table from a YAML or JSON file.
// The expected shape is a top-level "fields" list:
//
//	fields:
//	  - name: blood_pressure
//	    synonyms: ["BP", "Blood Pressure"]
//	  - name: pulse
//	    synonyms: ["Pulse"]
//
// List order is preserved; it defines both field precedence and synonym
// precedence during anchoring.
func LoadLabels(path string) ([]Label, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read label config: %w", err)
	}

	var table struct {
		Fields []Label `mapstructure:"fields"`
	}
	if err := v.Unmarshal(&table); err != nil {
		return nil, fmt.Errorf("parse label config: %w", err)
	}

	for i, label := range table.Fields {
		if label.Name == "" {
			return nil, fmt.Errorf("label config: field %d has no name", i)
		}
		if len(label.Synonyms) == 0 {
			return nil, fmt.Errorf("label config: field %q has no synonyms", label.Name)
		}
	}

	return table.Fields, nil
}
