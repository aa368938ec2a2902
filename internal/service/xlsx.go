package service

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Required header columns per upload contract. The backend matches them
// literally, so the Korean headers are part of the wire format.
var (
	rosterColumns  = []string{"이름", "전화번호", "소속센터", "고정교대조", "자격증"}
	workLogColumns = []string{"날짜", "이름", "근무지", "직무", "시간대", "근무시간"}
)

func requiredColumns(kind UploadKind) ([]string, error) {
	switch kind {
	case UploadWorkers:
		return rosterColumns, nil
	case UploadLogs:
		return workLogColumns, nil
	default:
		return nil, fmt.Errorf("unknown upload kind %q", kind)
	}
}

// ValidateUploadFile checks that a spreadsheet's first sheet carries every
// required column before it is sent, so malformed files fail locally with a
// ValidationError instead of a round trip.
func ValidateUploadFile(path string, kind UploadKind) error {
	required, err := requiredColumns(kind)
	if err != nil {
		return err
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		return &ValidationError{Msg: fmt.Sprintf("cannot read spreadsheet: %v", err)}
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return &ValidationError{Msg: "spreadsheet has no sheets"}
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return &ValidationError{Msg: fmt.Sprintf("cannot read sheet %q: %v", sheets[0], err)}
	}
	if len(rows) == 0 {
		return &ValidationError{Msg: "spreadsheet has no header row"}
	}

	have := make(map[string]bool, len(rows[0]))
	for _, cell := range rows[0] {
		have[strings.TrimSpace(cell)] = true
	}
	var missing []string
	for _, col := range required {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Msg: "missing required columns: " + strings.Join(missing, ", ")}
	}
	return nil
}

// ImportTemplate generates an empty .xlsx with the required header row for
// the given upload kind.
func ImportTemplate(kind UploadKind) ([]byte, error) {
	headers, err := requiredColumns(kind)
	if err != nil {
		return nil, err
	}

	book := excelize.NewFile()
	sheetName := "Import"
	index, err := book.NewSheet(sheetName)
	if err != nil {
		book.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	book.DeleteSheet("Sheet1")
	book.SetActiveSheet(index)

	headerStyle, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		book.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			book.Close()
			return nil, err
		}
		if err := book.SetCellValue(sheetName, cell, header); err != nil {
			book.Close()
			return nil, err
		}
		if err := book.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			book.Close()
			return nil, err
		}
		colName, _ := excelize.ColumnNumberToName(col + 1)
		_ = book.SetColWidth(sheetName, colName, colName, 16)
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		book.Close()
		return nil, fmt.Errorf("failed to serialize template: %w", err)
	}
	if err := book.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
