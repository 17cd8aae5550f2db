package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"bankd/internal/domain/transaction"
)

type TransactionHandler struct {
	transactions *transaction.Service
}

func NewTransactionHandler(transactions *transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// TransactionRequest mirrors the transaction row shape minus the
// store-assigned ID. Manual rows may carry any reason text.
type TransactionRequest struct {
	Amount               decimal.Decimal `json:"amount"`
	OriginatingAccountID int64           `json:"originatingAccountId"`
	ResultingAccountID   *int64          `json:"resultingAccountId,omitempty"`
	TransactionReason    string          `json:"transactionReason"`
}

type DepositRequest struct {
	AccountID int64           `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
}

type WithdrawalRequest struct {
	AccountID int64           `json:"accountId"`
	Amount    decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	SourceAccountID      int64           `json:"sourceAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
}

// HandleListTransactions returns the full ledger
func (h *TransactionHandler) HandleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.transactions.ListTransactions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if txs == nil {
		txs = []*transaction.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

// HandleGetTransaction returns a single transaction by ID
func (h *TransactionHandler) HandleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid transaction ID", http.StatusBadRequest)
		return
	}

	tx, err := h.transactions.GetTransaction(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

// HandleCreateTransaction inserts a manual ledger row; no balance moves
func (h *TransactionHandler) HandleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.transactions.CreateTransaction(r.Context(), transaction.CreateParams{
		Amount:               req.Amount,
		OriginatingAccountID: req.OriginatingAccountID,
		ResultingAccountID:   req.ResultingAccountID,
		Reason:               transaction.Reason(req.TransactionReason),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

// HandleUpdateTransaction overwrites all mutable fields of a ledger row
func (h *TransactionHandler) HandleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid transaction ID", http.StatusBadRequest)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.transactions.UpdateTransaction(r.Context(), id, transaction.UpdateParams{
		Amount:               req.Amount,
		OriginatingAccountID: req.OriginatingAccountID,
		ResultingAccountID:   req.ResultingAccountID,
		Reason:               transaction.Reason(req.TransactionReason),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

// HandleDeleteTransaction removes a ledger row
func (h *TransactionHandler) HandleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid transaction ID", http.StatusBadRequest)
		return
	}

	if err := h.transactions.DeleteTransaction(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDeposit credits an account and returns the recorded transaction
func (h *TransactionHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.transactions.Deposit(r.Context(), req.AccountID, req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

// HandleWithdrawal debits an account and returns the recorded transaction
func (h *TransactionHandler) HandleWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.transactions.Withdraw(r.Context(), req.AccountID, req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}

// HandleTransfer moves money between two accounts and returns the recorded
// transaction
func (h *TransactionHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tx, err := h.transactions.Transfer(r.Context(), req.SourceAccountID, req.DestinationAccountID, req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tx)
}
