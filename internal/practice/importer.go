package practice

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportResult holds the result of a catalog import operation
type ImportResult struct {
	TotalProcessed int
	Added          int
	Replaced       int
	Skipped        int
	Errors         []string
}

// Expected columns: key, name, description, steps (";"-separated),
// duration in minutes. The first row is treated as a header.
const importColumns = 5

// ImportFile loads additional practices from an Excel or CSV file into the
// catalog. Rows that cannot be parsed are reported in the result and skipped;
// a row with an existing key replaces the built-in practice.
func (c *Catalog) ImportFile(path string) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".csv" {
		return c.importFromCSV(path)
	}
	return c.importFromExcel(path)
}

// importFromExcel imports practices from the first sheet of an Excel file
func (c *Catalog) importFromExcel(path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		result.TotalProcessed++
		if err := c.importRow(row, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports practices from a CSV file
func (c *Catalog) importFromCSV(path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{}
	for line := 0; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		if line == 0 {
			continue // header
		}
		result.TotalProcessed++
		if err := c.importRow(row, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line+1, err))
		}
	}
	return result, nil
}

func (c *Catalog) importRow(row []string, result *ImportResult) error {
	if len(row) < importColumns {
		return fmt.Errorf("expected %d columns, got %d", importColumns, len(row))
	}

	key := strings.TrimSpace(row[0])
	name := strings.TrimSpace(row[1])
	if key == "" || name == "" {
		return fmt.Errorf("key and name are required")
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil || minutes <= 0 {
		return fmt.Errorf("invalid duration %q", row[4])
	}

	var steps []string
	for _, s := range strings.Split(row[3], ";") {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}

	_, existed := c.byKey[key]
	c.Add(Practice{
		Key:             key,
		Name:            name,
		Description:     strings.TrimSpace(row[2]),
		Steps:           steps,
		Duration:        fmt.Sprintf("%d минут", minutes),
		DurationMinutes: minutes,
	})
	if existed {
		result.Replaced++
	} else {
		result.Added++
	}
	return nil
}
