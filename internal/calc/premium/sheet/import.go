package sheet

import (
	"fmt"
	"io"
	"strings"

	"Tunelab/internal/calc/premium/batch"
	"Tunelab/internal/calc/tuning"

	"github.com/xuri/excelize/v2"
)

// Columns of an import sheet, in order. The first row is a header and is
// skipped; swap_drive left empty means the car keeps its stock drive.
var Columns = []string{
	"name", "weight", "balance", "front_freq", "rear_bias", "stiffness",
	"front_spring_min", "front_spring_max", "rear_spring_min", "rear_spring_max",
	"suspension", "stock_drive", "swap_drive", "front_aero", "rear_aero",
}

// minColumns covers everything up to stock_drive.
const minColumns = 12

// ReadSetups reads one setup per row from the first sheet of an xlsx file.
// Blank rows are skipped; short rows are an error naming the row.
func ReadSetups(r io.Reader) ([]batch.Setup, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("empty sheet")
	}

	var setups []batch.Setup
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		if len(row) < minColumns {
			return nil, fmt.Errorf("row %d: expected at least %d columns, got %d", i+1, minColumns, len(row))
		}
		setups = append(setups, parseRow(row))
	}
	if len(setups) == 0 {
		return nil, fmt.Errorf("no setups in sheet")
	}
	return setups, nil
}

func parseRow(row []string) batch.Setup {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	swap := tuning.StockDrive(strings.ToLower(cell(12)))
	return batch.Setup{
		Name: cell(0),
		Form: tuning.Form{
			Weight:         tuning.FormValue(cell(1)),
			Balance:        tuning.FormValue(cell(2)),
			FrontFreq:      tuning.FormValue(cell(3)),
			RearBias:       tuning.FormValue(cell(4)),
			Stiffness:      tuning.FormValue(cell(5)),
			FrontSpringMin: tuning.FormValue(cell(6)),
			FrontSpringMax: tuning.FormValue(cell(7)),
			RearSpringMin:  tuning.FormValue(cell(8)),
			RearSpringMax:  tuning.FormValue(cell(9)),
			Suspension:     tuning.Suspension(strings.ToLower(cell(10))),
			StockDrive:     tuning.StockDrive(strings.ToLower(cell(11))),
			Swapped:        swap != "",
			SwapDrive:      swap,
			FrontAero:      truthy(cell(13)),
			RearAero:       truthy(cell(14)),
		},
	}
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "y", "yes", "true", "x":
		return true
	}
	return false
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
