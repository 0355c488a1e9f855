package driver

import (
	"github.com/alfellati/ink-wrapper/internal/analyze"
	"github.com/alfellati/ink-wrapper/internal/metadata"
)

type DescribeResult struct {
	Doc  *metadata.Document
	Unit *analyze.Unit
}

// Describe запускает переднюю половину конвейера без генерации кода
func Describe(metadataPath string) (*DescribeResult, error) {
	doc, unit, err := load(metadataPath)
	if err != nil {
		return nil, err
	}
	return &DescribeResult{Doc: doc, Unit: unit}, nil
}
