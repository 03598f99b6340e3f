package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	auth "Annulus/internal/auth"
	zscore "Annulus/internal/calc/zscore"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Author == "" {
		if _, login, ok := auth.UserFromContext(r.Context()); ok {
			input.Author = login
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, input, time.Now()); err != nil {
		if errors.Is(err, zscore.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	w.Write(buf.Bytes())
}
