package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	zscore "Annulus/internal/calc/zscore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCalcTable(t *testing.T) {
	out, err := run(t, "", "calc", "--height", "100", "--weight", "15", "--coefficients")
	require.NoError(t, err)

	assert.Contains(t, out, "0.6461")
	assert.Contains(t, out, "Pettersen 2008")
	assert.Contains(t, out, "13.08 mm")
	assert.Contains(t, out, "6.10 + 10.80 × 0.6461 = 13.08 mm")
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "", "calc", "--height", "100", "--weight", "15", "--format", "json")
	require.NoError(t, err)

	var got zscore.AggregateResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	want := zscore.ComputeAll(zscore.PatientInput{HeightCM: 100, WeightKG: 15})
	assert.InDelta(t, want.Results[zscore.MethodBoston][zscore.ValveTricuspid], got.Results[zscore.MethodBoston][zscore.ValveTricuspid], 1e-12)
}

func TestCalcYAML(t *testing.T) {
	out, err := run(t, "", "calc", "--height", "100", "--weight", "15", "-f", "yaml")
	require.NoError(t, err)

	var got zscore.AggregateResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.InDelta(t, zscore.ComputeBSA(100, 15), got.BSA, 1e-12)
	assert.Len(t, got.Results, 4)
	assert.Equal(t, zscore.LookupCoefficients(zscore.MethodCantinotti, zscore.ValveLPA), got.Coefficients[zscore.MethodCantinotti][zscore.ValveLPA])
}

func TestCalcRejectsInvalidInput(t *testing.T) {
	_, err := run(t, "", "calc", "--height", "0", "--weight", "15")
	assert.ErrorIs(t, err, zscore.ErrInvalidInput)

	_, err = run(t, "", "calc", "--height", "100")
	assert.Error(t, err)

	_, err = run(t, "", "calc", "--height", "100", "--weight", "15", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestFormulas(t *testing.T) {
	out, err := run(t, "", "formulas")
	require.NoError(t, err)
	for _, f := range zscore.DescribeAll() {
		assert.Contains(t, out, f.Name)
	}

	out, err = run(t, "", "formulas", "--format", "json")
	require.NoError(t, err)
	var got []zscore.FormulaInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, zscore.DescribeAll(), got)
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "patients.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"height_cm", "weight_kg", "label"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{100, 15, "a"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{0, 15, "bad"}))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "out.xlsx")
	stdout, err := run(t, "", "import", in, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Computed 1 rows, skipped 1")
	assert.Contains(t, stdout, "skipped row 3")

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	assert.Contains(t, res.GetSheetList(), "Summary")
}

func TestReportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "r.pdf")
	stdout, err := run(t, "", "report", "--height", "100", "--weight", "15", "--patient", "J. Doe", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "s3cret\n", "hash-password")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	_, err = run(t, "abc", "hash-password")
	assert.Error(t, err)

	_, err = run(t, "", "hash-password")
	assert.Error(t, err)
}
