package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"bankd/internal/domain/account"
)

type AccountHandler struct {
	accounts *account.Service
}

func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// AccountRequest mirrors the account entity shape minus the store-assigned ID.
type AccountRequest struct {
	UserName string          `json:"userName"`
	Balance  decimal.Decimal `json:"balance"`
	BankID   int64           `json:"bankId"`
}

// HandleListAccounts returns all accounts
func (h *AccountHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.ListAccounts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []*account.Account{}
	}
	respondJSON(w, http.StatusOK, accounts)
}

// HandleGetAccount returns a single account by ID
func (h *AccountHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid account ID", http.StatusBadRequest)
		return
	}

	acc, err := h.accounts.GetAccount(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, acc)
}

// HandleCreateAccount creates a new account
func (h *AccountHandler) HandleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	acc, err := h.accounts.CreateAccount(r.Context(), account.CreateParams{
		UserName: req.UserName,
		Balance:  req.Balance,
		BankID:   req.BankID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, acc)
}

// HandleUpdateAccount overwrites userName, balance and owning bank
func (h *AccountHandler) HandleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid account ID", http.StatusBadRequest)
		return
	}

	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	acc, err := h.accounts.UpdateAccount(r.Context(), id, account.UpdateParams{
		UserName: req.UserName,
		Balance:  req.Balance,
		BankID:   req.BankID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, acc)
}

// HandleDeleteAccount removes an account and, through the store, the
// transactions referencing it
func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid account ID", http.StatusBadRequest)
		return
	}

	if err := h.accounts.DeleteAccount(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
