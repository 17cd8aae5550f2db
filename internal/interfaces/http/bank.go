package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"bankd/internal/domain/bank"
)

type BankHandler struct {
	banks *bank.Service
}

func NewBankHandler(banks *bank.Service) *BankHandler {
	return &BankHandler{banks: banks}
}

// BankRequest mirrors the bank entity shape minus the store-assigned ID.
type BankRequest struct {
	BankName                   string          `json:"bankName"`
	TotalTransactionFeeAmount  decimal.Decimal `json:"totalTransactionFeeAmount"`
	TotalTransferAmount        decimal.Decimal `json:"totalTransferAmount"`
	TransactionFlatFeeAmount   decimal.Decimal `json:"transactionFlatFeeAmount"`
	TransactionPercentFeeValue decimal.Decimal `json:"transactionPercentFeeValue"`
}

// HandleListBanks returns all banks
func (h *BankHandler) HandleListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.ListBanks(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if banks == nil {
		banks = []*bank.Bank{}
	}
	respondJSON(w, http.StatusOK, banks)
}

// HandleGetBank returns a single bank by ID
func (h *BankHandler) HandleGetBank(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid bank ID", http.StatusBadRequest)
		return
	}

	b, err := h.banks.GetBank(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// HandleCreateBank creates a new bank
func (h *BankHandler) HandleCreateBank(w http.ResponseWriter, r *http.Request) {
	var req BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.banks.CreateBank(r.Context(), bank.CreateParams{
		Name:                       req.BankName,
		TotalTransactionFeeAmount:  req.TotalTransactionFeeAmount,
		TotalTransferAmount:        req.TotalTransferAmount,
		TransactionFlatFeeAmount:   req.TransactionFlatFeeAmount,
		TransactionPercentFeeValue: req.TransactionPercentFeeValue,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, b)
}

// HandleUpdateBank overwrites all mutable fields of an existing bank
func (h *BankHandler) HandleUpdateBank(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid bank ID", http.StatusBadRequest)
		return
	}

	var req BankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	b, err := h.banks.UpdateBank(r.Context(), id, bank.UpdateParams{
		Name:                       req.BankName,
		TotalTransactionFeeAmount:  req.TotalTransactionFeeAmount,
		TotalTransferAmount:        req.TotalTransferAmount,
		TransactionFlatFeeAmount:   req.TransactionFlatFeeAmount,
		TransactionPercentFeeValue: req.TransactionPercentFeeValue,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// HandleDeleteBank removes a bank and, through the store, its accounts
func (h *BankHandler) HandleDeleteBank(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid bank ID", http.StatusBadRequest)
		return
	}

	if err := h.banks.DeleteBank(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleBankAccounts returns every account in the store. The listing is not
// scoped to a bank.
func (h *BankHandler) HandleBankAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.banks.ListAllAccounts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

// HandleTotalTransactionFees returns the fee total folded over the ledger
func (h *BankHandler) HandleTotalTransactionFees(w http.ResponseWriter, r *http.Request) {
	total, err := h.banks.TotalTransactionFees(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]decimal.Decimal{"totalTransactionFeeAmount": total})
}

// HandleTotalTransferAmount returns the transfer volume total
func (h *BankHandler) HandleTotalTransferAmount(w http.ResponseWriter, r *http.Request) {
	total, err := h.banks.TotalTransferAmount(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]decimal.Decimal{"totalTransferAmount": total})
}
