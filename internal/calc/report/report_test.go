package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf16"

	auth "Annulus/internal/auth"
	zscore "Annulus/internal/calc/zscore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	in := Input{
		PatientInput: zscore.PatientInput{HeightCM: 100, WeightKG: 15},
		Patient:      "Test Patient",
		Author:       "Echo Lab",
		Notes:        "Follow-up in six months.",
	}
	require.NoError(t, Write(&buf, in, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestFormulaLines(t *testing.T) {
	lines := formulaLines()
	require.Len(t, lines, 4)
	assert.Equal(t, "PHN/Lopez: Predicted = intercept + slope x sqrt(weight) (kg) (Linear regression on the square root of body weight)", lines[0])
	assert.Equal(t, "Pettersen 2008: Predicted = intercept + slope x BSA(m2) (Linear regression on BSA)", lines[1])
	assert.Contains(t, lines[2], "slope x sqrt(BSA) (m2)")
	assert.Contains(t, lines[3], "slope x sqrt(BSA) (m2)")
	for _, line := range lines {
		for _, r := range line {
			assert.Less(t, r, rune(0x80), "non-ASCII %q in %q", r, line)
		}
	}
}

func TestWriteRejectsInvalidInput(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Input{PatientInput: zscore.PatientInput{HeightCM: 100}}, time.Now())
	assert.ErrorIs(t, err, zscore.ErrInvalidInput)
	assert.Zero(t, buf.Len())
}

func TestHandlerGenerate(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf",
		strings.NewReader(`{"height_cm":100,"weight_kg":15,"patient":"A"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"height_cm":-1,"weight_kg":15}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// utf16Text is how gofpdf stores UTF-8 document metadata.
func utf16Text(s string) []byte {
	out := []byte{0xFE, 0xFF}
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

func TestHandlerGenerateDefaultsAuthorToUser(t *testing.T) {
	h := &Handler{}
	body := `{"height_cm":100,"weight_kg":15}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", strings.NewReader(body))
	h.Generate(rec, req.WithContext(auth.WithUser(req.Context(), 1, "dr.rossi")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.Contains(rec.Body.Bytes(), utf16Text("dr.rossi")))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf",
		strings.NewReader(`{"height_cm":100,"weight_kg":15,"author":"Echo Lab"}`))
	h.Generate(rec, req.WithContext(auth.WithUser(req.Context(), 1, "dr.rossi")))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.Contains(rec.Body.Bytes(), utf16Text("Echo Lab")))
	assert.False(t, bytes.Contains(rec.Body.Bytes(), utf16Text("dr.rossi")))

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/tools/report/pdf", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, bytes.Contains(rec.Body.Bytes(), []byte("/Author")))
}
