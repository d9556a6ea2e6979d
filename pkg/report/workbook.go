package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// SaveWorkbook writes s to an xlsx workbook: one row per zone with its size,
// category shares and the mean readiness, plus a stacked column chart of the
// shares combined with a line at the mean.
func SaveWorkbook(path string, s *Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}

	header := []interface{}{"Zone", "Size"}
	for _, c := range s.Categories {
		header = append(header, c)
	}
	header = append(header, "Mean")
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}

	for i, z := range s.Zones {
		row := []interface{}{fmt.Sprintf("Zone %d", z), s.Sizes[i]}
		for _, c := range s.Categories {
			row = append(row, s.Proportions[c][i])
		}
		row = append(row, s.Mean)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	lastRow := len(s.Zones) + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", summarySheet, lastRow)
	column := func(n int) (excelize.ChartSeries, error) {
		col, err := excelize.ColumnNumberToName(n)
		if err != nil {
			return excelize.ChartSeries{}, err
		}
		return excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", summarySheet, col),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", summarySheet, col, col, lastRow),
		}, nil
	}

	var series []excelize.ChartSeries
	for i, c := range s.Categories {
		cs, err := column(i + 3)
		if err != nil {
			return err
		}
		cs.Fill = excelize.Fill{Type: "pattern", Color: []string{categoryColor(c)}, Pattern: 1}
		series = append(series, cs)
	}

	meanSeries, err := column(len(s.Categories) + 3)
	if err != nil {
		return err
	}
	meanSeries.Line = excelize.ChartLine{Width: 1.5}

	maxShare := 1.0
	bars := &excelize.Chart{
		Type:      excelize.ColStacked,
		Series:    series,
		Title:     []excelize.RichTextRun{{Text: s.Title}},
		Legend:    excelize.ChartLegend{Position: "right"},
		YAxis:     excelize.ChartAxis{Maximum: &maxShare},
		Dimension: excelize.ChartDimension{Width: 960, Height: 480},
	}
	mean := &excelize.Chart{
		Type:   excelize.Line,
		Series: []excelize.ChartSeries{meanSeries},
	}

	anchor, err := excelize.CoordinatesToCellName(len(s.Categories)+5, 2)
	if err != nil {
		return err
	}
	if err := f.AddChart(summarySheet, anchor, bars, mean); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}

	return f.SaveAs(path)
}
