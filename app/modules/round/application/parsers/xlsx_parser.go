package parsers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// shotsSheet is read in preference to the first sheet when a workbook has it.
const shotsSheet = "shots"

// XLSXParser reads shot rows from an Excel workbook.
type XLSXParser struct{}

func NewXLSXParser() *XLSXParser {
	return &XLSXParser{}
}

func (p *XLSXParser) Parse(data []byte) (*Scorecard, error) {
	book, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer book.Close()

	sheet, err := pickSheet(book.GetSheetList())
	if err != nil {
		return nil, err
	}
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return parseShotRows(rows)
}

func pickSheet(names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("XLSX file has no sheets")
	}
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), shotsSheet) {
			return name, nil
		}
	}
	return names[0], nil
}
