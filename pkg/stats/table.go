package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/anrid/xls"
	"github.com/xuri/excelize/v2"
)

// ExtractDataFromFile calls handler for every row of the first sheet (or of
// the CSV document) in f.
func ExtractDataFromFile(f *File, handler func(r []string)) error {
	location, _, _ := strings.Cut(f.URL, "?")

	switch strings.ToLower(path.Ext(location)) {
	case ".xlsx", ".xlsm":
		return ExtractDataFromXLSX(f, handler)
	case ".xls":
		return ExtractDataFromXLS(f, handler)
	default:
		return ExtractDataFromCSV(f, handler)
	}
}

func ExtractDataFromCSV(f *File, handler func(r []string)) error {
	slog.Debug("Loading CSV data", "url", f.URL)

	rawData, err := f.Content()
	if err != nil {
		return err
	}

	reader := csv.NewReader(bytes.NewReader(rawData))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("could not read CSV file '%s' (%s): %w", f.Title, f.URL, err)
	}

	for _, r := range rows {
		handler(r)
	}
	return nil
}

func ExtractDataFromXLS(f *File, handler func(r []string)) error {
	slog.Debug("Loading XLS data", "url", f.URL)

	rawData, err := f.Content()
	if err != nil {
		return err
	}

	wb, err := xls.OpenReader(bytes.NewReader(rawData), "utf-8")
	if err != nil {
		return fmt.Errorf("could not read XLS file '%s' (%s): %w", f.Title, f.URL, err)
	}

	if sheet := wb.GetSheet(0); sheet != nil {
		slog.Debug("Reading sheet", "name", sheet.Name, "rows", sheet.MaxRow)

		for i := 0; i <= int(sheet.MaxRow); i++ {
			row := sheet.Row(i)
			if row != nil {
				var cols []string
				for j := 0; j <= row.LastCol(); j++ {
					cols = append(cols, row.Col(j))
				}
				handler(cols)
			}
		}
	}
	return nil
}

func ExtractDataFromXLSX(f *File, handler func(r []string)) error {
	slog.Debug("Loading XLSX data", "url", f.URL)

	rawData, err := f.Content()
	if err != nil {
		return err
	}

	wb, err := excelize.OpenReader(bytes.NewReader(rawData))
	if err != nil {
		return fmt.Errorf("could not read XLSX file '%s' (%s): %w", f.Title, f.URL, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil
	}
	defaultSheet := sheets[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("could not get rows for default sheet '%s': %w", defaultSheet, err)
	}

	slog.Debug("Reading sheet", "name", defaultSheet, "rows", len(rows))

	for _, r := range rows {
		handler(r)
	}
	return nil
}

// ReadRows extracts f into rows keyed by the header row. The first row with
// any non-empty cell is the header; blank rows are skipped and short rows
// read as empty cells.
func ReadRows(f *File) ([]Row, error) {
	var header []string
	var rows []Row

	err := ExtractDataFromFile(f, func(r []string) {
		if blank(r) {
			return
		}
		if header == nil {
			for _, c := range r {
				header = append(header, mustTrim(c))
			}
			return
		}

		row := make(Row, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if i < len(r) {
				row[col] = mustTrim(r[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func blank(r []string) bool {
	for _, c := range r {
		if mustTrim(c) != "" {
			return false
		}
	}
	return true
}
