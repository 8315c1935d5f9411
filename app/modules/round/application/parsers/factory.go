package parsers

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns an uploaded scorecard file into a Scorecard.
type Parser interface {
	Parse(data []byte) (*Scorecard, error)
}

// ParserFactory picks a Parser for an upload by its filename.
type ParserFactory interface {
	GetParser(filename string) (Parser, error)
}

// Factory maps lowercase file extensions to parsers.
type Factory struct {
	byExt map[string]Parser
}

func NewFactory() *Factory {
	jsonParser := NewJSONParser()
	xlsxParser := NewXLSXParser()
	return &Factory{byExt: map[string]Parser{
		".json": jsonParser,
		".txt":  jsonParser,
		".csv":  NewCSVParser(),
		".xlsx": xlsxParser,
		".xls":  xlsxParser,
	}}
}

func (f *Factory) GetParser(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if p, ok := f.byExt[ext]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unsupported file type: %q", ext)
}
