package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/evtools/evtchart/internal/models"
)

func ParseJSONOptions(reader io.Reader) (*models.ChartOptionsFile, error) {
	var data models.ChartOptionsFile
	decoder := json.NewDecoder(reader)

	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse JSON chart options: %w", err)
	}

	return &data, nil
}
