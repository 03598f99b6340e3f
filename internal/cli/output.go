package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	zscore "Annulus/internal/calc/zscore"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderAggregate(w io.Writer, in zscore.PatientInput, res zscore.AggregateResult, showCoefficients bool) {
	fmt.Fprintln(w, titleStyle.Render("Body size"))
	fmt.Fprintf(w, "  Height:        %.1f cm\n", in.HeightCM)
	fmt.Fprintf(w, "  Weight:        %.1f kg\n", in.WeightKG)
	fmt.Fprintf(w, "  √weight:       %.4f\n", res.SqrtWeight)
	fmt.Fprintf(w, "  BSA (Haycock): %.4f m²\n", res.BSA)
	fmt.Fprintf(w, "  √BSA:          %.4f\n", res.SqrtBSA)
	fmt.Fprintln(w, hintStyle.Render("  BSA = 0.024265 × height^0.3964 × weight^0.5378"))
	fmt.Fprintln(w)

	headers := []string{"Method"}
	for _, v := range zscore.Valves() {
		headers = append(headers, v.Label())
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
	for _, m := range zscore.Methods() {
		row := []string{m.Label()}
		for _, v := range zscore.Valves() {
			row = append(row, fmt.Sprintf("%.2f mm", res.Results[m][v]))
		}
		t.Row(row...)
	}
	fmt.Fprintln(w, titleStyle.Render("Predicted diameter (Z = 0)"))
	fmt.Fprintln(w, t.String())

	if !showCoefficients {
		return
	}
	d := res.Metrics()
	for _, m := range zscore.Methods() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render(m.Label()))
		x := zscore.Variable(m, d)
		for _, v := range zscore.Valves() {
			line := res.Coefficients[m][v]
			fmt.Fprintf(w, "  %-10s %.2f + %.2f × %.4f = %.2f mm\n",
				v.Label(), line.Intercept, line.Slope, x, res.Results[m][v])
		}
	}
}

func renderFormulas(w io.Writer, formulas []zscore.FormulaInfo) {
	for i, f := range formulas {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, titleStyle.Render(f.Name))
		fmt.Fprintln(w, "  "+f.Formula)
		fmt.Fprintln(w, hintStyle.Render("  "+strings.TrimSpace(f.Description)))
	}
}
