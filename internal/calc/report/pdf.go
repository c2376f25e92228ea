package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"Tunelab/internal/calc/premium/batch"
	"Tunelab/internal/calc/tuning"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Title  string        `json:"title"`
	Author string        `json:"author"`
	Notes  string        `json:"notes"`
	Items  []batch.Setup `json:"items"`
}

// Write renders one page per outcome: the inputs that went in, the values to
// dial into the tuning menu, and validation messages for rejected setups.
func Write(w io.Writer, in Input, outcomes []batch.Outcome, now time.Time) error {
	if in.Title == "" {
		in.Title = "Suspension Setup Sheet"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, true)
	if in.Author != "" {
		pdf.SetAuthor(in.Author, true)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, o := range outcomes {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, tr(in.Title))
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Setup: %s", o.Name)))
		pdf.Ln(6)
		if in.Author != "" {
			pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
			pdf.Ln(6)
		}
		pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
		pdf.Ln(10)

		if !o.OK() {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.Cell(0, 7, "Setup rejected")
			pdf.Ln(8)
			pdf.SetFont("Helvetica", "", 11)
			for _, k := range sortedKeys(o.Errors) {
				pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s", k, o.Errors[k])))
				pdf.Ln(6)
			}
			continue
		}

		inputTable(pdf, o.Response.Input)
		pdf.Ln(6)
		resultTable(pdf, o.Response.Result.Display())

		if in.Notes != "" {
			pdf.Ln(8)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(in.Notes), "", "L", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func inputTable(pdf *gofpdf.Fpdf, in tuning.Input) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Car")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Weight", fmt.Sprintf("%.0f kg", in.Weight)},
		{"Front balance", fmt.Sprintf("%.1f %%", in.Balance*100)},
		{"Front frequency", fmt.Sprintf("%.2f Hz", in.FrontFreq)},
		{"Rear bias", fmt.Sprintf("%+.1f %%", in.RearBias)},
		{"Suspension", string(in.Suspension)},
		{"Drive", string(in.Drive)},
		{"Aero (front / rear)", fmt.Sprintf("%s / %s", yesNo(in.FrontAero), yesNo(in.RearAero))},
		{"Stiffness multiplier", fmt.Sprintf("%.2f", in.Stiffness)},
		{"Front spring range", fmt.Sprintf("%.1f - %.1f", in.FrontSpringMin, in.FrontSpringMax)},
		{"Rear spring range", fmt.Sprintf("%.1f - %.1f", in.RearSpringMin, in.RearSpringMax)},
	}
	for _, r := range rows {
		pdf.CellFormat(60, 6, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, r[1], "1", 1, "R", false, 0, "")
	}
}

func resultTable(pdf *gofpdf.Fpdf, d tuning.Display) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Tuning")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(50, 7, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Front", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Rear", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	rows := [][3]string{
		{"Springs", d.FrontSpring, d.RearSpring},
		{"Rebound", d.FrontRebound, d.RearRebound},
		{"Compression", d.FrontCompression, d.RearCompression},
		{"Anti-roll bars", d.FrontARB, d.RearARB},
	}
	for _, r := range rows {
		pdf.CellFormat(50, 7, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, r[1], "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, r[2], "1", 1, "C", false, 0, "")
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func sortedKeys(m tuning.FieldErrors) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
