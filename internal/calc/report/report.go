package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	zscore "Annulus/internal/calc/zscore"

	"github.com/phpdave11/gofpdf"
)

const disclaimer = "Reference values only. Coefficients are approximations of the published " +
	"regressions; confirm against the original literature before clinical use."

// pdfText spells out the math symbols of the formula strings; the core PDF
// fonts are cp1252 and have no glyph for the radical sign.
var pdfText = strings.NewReplacer(
	"√BSA(m²)", "sqrt(BSA) (m2)",
	"√weight(kg)", "sqrt(weight) (kg)",
	"√", "sqrt ",
	"×", "x",
	"²", "2",
)

type Input struct {
	zscore.PatientInput
	Patient string `json:"patient"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Write renders a one-page report of every method and valve for in.
func Write(w io.Writer, in Input, now time.Time) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if in.Title == "" {
		in.Title = "Valve Annulus Report"
	}
	res := zscore.ComputeAll(in.PatientInput)

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(in.Title, true)
	if in.Author != "" {
		pdf.SetAuthor(in.Author, true)
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if in.Patient != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Patient: %s", in.Patient)))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Body size")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Height: %.1f cm    Weight: %.1f kg", in.HeightCM, in.WeightKG),
		fmt.Sprintf("BSA (Haycock): %.4f m2    sqrt(BSA): %.4f    sqrt(weight): %.4f", res.BSA, res.SqrtBSA, res.SqrtWeight),
		"BSA = 0.024265 x height^0.3964 x weight^0.5378",
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	writeTable(pdf, res)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Formulas")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range formulaLines() {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}

	if in.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, disclaimer, "", "L", false)

	return pdf.Output(w)
}

func formulaLines() []string {
	var lines []string
	for _, f := range zscore.DescribeAll() {
		lines = append(lines, pdfText.Replace(fmt.Sprintf("%s: %s (%s)", f.Name, f.Formula, f.Description)))
	}
	return lines
}

func writeTable(pdf *gofpdf.Fpdf, res zscore.AggregateResult) {
	const methodW, valveW, rowH = 55.0, 35.0, 7.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 228, 245)
	pdf.CellFormat(methodW, rowH, "Method", "1", 0, "L", true, 0, "")
	for _, v := range zscore.Valves() {
		pdf.CellFormat(valveW, rowH, v.Label()+" (mm)", "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, m := range zscore.Methods() {
		pdf.CellFormat(methodW, rowH, m.Label(), "1", 0, "L", false, 0, "")
		for _, v := range zscore.Valves() {
			pdf.CellFormat(valveW, rowH, fmt.Sprintf("%.2f", res.Results[m][v]), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
