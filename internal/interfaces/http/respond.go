package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"bankd/internal/domain/account"
	"bankd/internal/domain/bank"
	"bankd/internal/domain/transaction"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError maps domain errors to HTTP statuses: missing references are
// 404, insufficient funds and invalid input are 400, everything else is an
// opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, bank.ErrBankNotFound),
		errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, transaction.ErrInsufficientFunds):
		http.Error(w, "Insufficient funds", http.StatusBadRequest)
	case errors.Is(err, bank.ErrInvalidInput),
		errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, transaction.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("%s %s error: %v", r.Method, r.URL.Path, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// HandleHealth reports liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
