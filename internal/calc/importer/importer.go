package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	batch "Annulus/internal/calc/batch"
	zscore "Annulus/internal/calc/zscore"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

var ErrTooManyRows = errors.New("too many rows")

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Count   int                `json:"count"`
	Results []batch.ItemResult `json:"results"`
	Skipped []SkippedRow       `json:"skipped,omitempty"`
}

// Import reads the first sheet of a workbook. Row 1 is a header; the
// remaining rows are height_cm, weight_kg and an optional label.
func Import(r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return ImportResult{}, fmt.Errorf("sheet %q has no data rows", sheet)
	}
	if n := len(rows) - 1; n > batch.MaxItems {
		return ImportResult{}, fmt.Errorf("%w: sheet %q has %d data rows, limit is %d", ErrTooManyRows, sheet, n, batch.MaxItems)
	}

	var items []batch.Item
	var skipped []SkippedRow
	for i := 1; i < len(rows); i++ {
		item, err := parseRow(rows[i])
		if err != nil {
			skipped = append(skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		if item.Label == "" {
			item.Label = fmt.Sprintf("row %d", i+1)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return ImportResult{Skipped: skipped}, nil
	}

	res, err := batch.Calculate(batch.BatchInput{Items: items})
	if err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Count: len(res.Results), Results: res.Results, Skipped: skipped}, nil
}

func parseRow(row []string) (batch.Item, error) {
	if len(row) < 2 {
		return batch.Item{}, fmt.Errorf("expected height_cm and weight_kg")
	}
	height, err := toFloat(row[0])
	if err != nil {
		return batch.Item{}, fmt.Errorf("height_cm: %w", err)
	}
	weight, err := toFloat(row[1])
	if err != nil {
		return batch.Item{}, fmt.Errorf("weight_kg: %w", err)
	}
	item := batch.Item{PatientInput: zscore.PatientInput{HeightCM: height, WeightKG: weight}}
	if err := item.Validate(); err != nil {
		return batch.Item{}, err
	}
	if len(row) > 2 {
		item.Label = strings.TrimSpace(row[2])
	}
	return item, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Export builds a workbook with a Summary sheet of derived metrics and one
// sheet of valve predictions per method.
func Export(results []batch.ItemResult) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		f.Close()
		return nil, err
	}

	header := []interface{}{"label", "height_cm", "weight_kg", "bsa_m2", "sqrt_bsa", "sqrt_weight"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	for i, r := range results {
		row := []interface{}{r.Label, r.HeightCM, r.WeightKG, r.Result.BSA, r.Result.SqrtBSA, r.Result.SqrtWeight}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	for _, m := range zscore.Methods() {
		sheet := string(m)
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, err
		}
		header := []interface{}{"label"}
		for _, v := range zscore.Valves() {
			header = append(header, string(v)+"_mm")
		}
		if err := setRow(f, sheet, 1, header); err != nil {
			f.Close()
			return nil, err
		}
		for i, r := range results {
			row := []interface{}{r.Label}
			for _, v := range zscore.Valves() {
				row = append(row, r.Result.Results[m][v])
			}
			if err := setRow(f, sheet, i+2, row); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

// WriteWorkbook is Export followed by writing the file to w.
func WriteWorkbook(w io.Writer, results []batch.ItemResult) error {
	f, err := Export(results)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
