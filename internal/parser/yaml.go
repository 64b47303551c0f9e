package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/evtools/evtchart/internal/models"
)

func ParseYAMLOptions(reader io.Reader) (*models.ChartOptionsFile, error) {
	var data models.ChartOptionsFile
	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse YAML chart options: %w", err)
	}

	return &data, nil
}
