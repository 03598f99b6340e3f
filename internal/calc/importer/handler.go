package importer

import (
	"encoding/json"
	"errors"
	"net/http"

	batch "Annulus/internal/calc/batch"
)

const MaxUploadSize = 10 << 20

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Import(file)
	if errors.Is(err, ErrTooManyRows) {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := Export(res.Results)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"annulus.xlsx\"")
	w.Write(buf.Bytes())
}
