package sheet

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"Tunelab/internal/calc/premium/batch"

	"github.com/xuri/excelize/v2"
)

const resultSheet = "Tuning"

var resultHeader = []interface{}{
	"Setup", "Drive", "Suspension",
	"Front spring", "Rear spring",
	"Front rebound", "Rear rebound",
	"Front compression", "Rear compression",
	"Front ARB", "Rear ARB",
	"Errors",
}

// WriteOutcomes writes one row per outcome. Failed setups keep their row
// with only the name and the validation messages filled in.
func WriteOutcomes(w io.Writer, outcomes []batch.Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(resultSheet, "A1", &resultHeader); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(resultSheet, "A1", "L1", headerStyle); err != nil {
		return err
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return err
	}

	for i, o := range outcomes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{o.Name}
		if o.OK() {
			in, res := o.Response.Input, o.Response.Result
			row = append(row,
				string(in.Drive), string(in.Suspension),
				res.FrontSpring, res.RearSpring,
				res.FrontRebound, res.RearRebound,
				res.FrontCompression, res.RearCompression,
				res.FrontARB, res.RearARB,
			)
		} else {
			row = append(row, "", "", "", "", "", "", "", "", "", "", joinErrors(o.Errors))
		}
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return err
		}
	}

	if len(outcomes) > 0 {
		last := fmt.Sprintf("K%d", len(outcomes)+1)
		if err := f.SetCellStyle(resultSheet, "D2", last, numberStyle); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(resultSheet, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(resultSheet, "B", "K", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(resultSheet, "L", "L", 48); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func joinErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+errs[k])
	}
	return strings.Join(parts, "; ")
}
