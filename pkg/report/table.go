package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

// ComparisonHeader is the header row of a comparison table.
var ComparisonHeader = []string{"Zone A", "Zone B", "p-Value"}

// WriteComparisons writes comparisons as a CSV comparison table.
func WriteComparisons(w io.Writer, comparisons []Comparison) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ComparisonHeader); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, c := range comparisons {
		record := []string{
			strconv.Itoa(c.ZoneA),
			strconv.Itoa(c.ZoneB),
			strconv.FormatFloat(c.PValue, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// SaveComparisons writes the comparison table to filePath, creating its
// directory if needed.
func SaveComparisons(filePath string, comparisons []Comparison) error {
	slog.Info("Writing comparison table",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(comparisons)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	if err := WriteComparisons(file, comparisons); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ComparisonFileName names the table of a sweep, e.g.
// "basic-literacy-comparison.csv" or "reading-grade-3-comparison.csv".
func ComparisonFileName(subject zone.Subject, grade int) string {
	if subject.Kindergarten() {
		return subject.Slug() + "-comparison.csv"
	}
	return fmt.Sprintf("%s-grade-%d-comparison.csv", subject.Slug(), grade)
}
