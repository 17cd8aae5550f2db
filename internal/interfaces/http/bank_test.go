package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankd/internal/domain/bank"
	"bankd/internal/domain/transaction"
)

func newBankHandler(repo *MockBankRepo, accounts *MockAccountRepo, transactions *MockTransactionRepo) *BankHandler {
	if accounts == nil {
		accounts = &MockAccountRepo{}
	}
	if transactions == nil {
		transactions = &MockTransactionRepo{}
	}
	svc := bank.NewService(repo, accounts, transactions)
	return NewBankHandler(svc)
}

func TestHandleCreateBank(t *testing.T) {
	repo := &MockBankRepo{
		CreateFunc: func(ctx context.Context, params bank.CreateParams) (*bank.Bank, error) {
			return &bank.Bank{
				ID:                         1,
				Name:                       params.Name,
				TransactionFlatFeeAmount:   params.TransactionFlatFeeAmount,
				TransactionPercentFeeValue: params.TransactionPercentFeeValue,
			}, nil
		},
	}
	handler := newBankHandler(repo, nil, nil)

	body := `{"bankName": "First National", "transactionFlatFeeAmount": "10", "transactionPercentFeeValue": "0.05"}`
	req := httptest.NewRequest(http.MethodPost, "/api/banks", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreateBank(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var got bank.Bank
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Name != "First National" {
		t.Errorf("expected name %q, got %q", "First National", got.Name)
	}
	if got.ID != 1 {
		t.Errorf("expected bank ID 1, got %d", got.ID)
	}
}

func TestHandleCreateBank_MissingName(t *testing.T) {
	created := false
	repo := &MockBankRepo{
		CreateFunc: func(ctx context.Context, params bank.CreateParams) (*bank.Bank, error) {
			created = true
			return nil, nil
		},
	}
	handler := newBankHandler(repo, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/banks", strings.NewReader(`{"bankName": ""}`))
	w := httptest.NewRecorder()

	handler.HandleCreateBank(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if created {
		t.Error("expected repository create not to be called")
	}
}

func TestHandleGetBank_NotFound(t *testing.T) {
	repo := &MockBankRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*bank.Bank, error) {
			return nil, bank.ErrBankNotFound
		},
	}
	handler := newBankHandler(repo, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/banks/42", nil)
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	handler.HandleGetBank(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleListBanks_Empty(t *testing.T) {
	handler := newBankHandler(&MockBankRepo{}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/banks", nil)
	w := httptest.NewRecorder()

	handler.HandleListBanks(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty array, got %q", w.Body.String())
	}
}

func TestHandleDeleteBank(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		repo := &MockBankRepo{
			ExistsFunc: func(ctx context.Context, id int64) (bool, error) {
				return false, nil
			},
		}
		handler := newBankHandler(repo, nil, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/banks/42", nil)
		req.SetPathValue("id", "42")
		w := httptest.NewRecorder()

		handler.HandleDeleteBank(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		repo := &MockBankRepo{
			ExistsFunc: func(ctx context.Context, id int64) (bool, error) {
				return true, nil
			},
			DeleteFunc: func(ctx context.Context, id int64) error {
				return nil
			},
		}
		handler := newBankHandler(repo, nil, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/banks/1", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		handler.HandleDeleteBank(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected status 204, got %d", w.Code)
		}
	})
}

func TestHandleTotalTransactionFees(t *testing.T) {
	transactions := &MockTransactionRepo{
		ListFunc: func(ctx context.Context) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: 1, Amount: dec("100"), OriginatingAccountID: 1, Reason: transaction.ReasonDeposit},
				{ID: 2, Amount: dec("-100"), OriginatingAccountID: 1, Reason: transaction.ReasonWithdrawal},
			}, nil
		},
	}
	handler := newBankHandler(&MockBankRepo{}, nil, transactions)

	req := httptest.NewRequest(http.MethodGet, "/api/banks/total-transaction-fees", nil)
	w := httptest.NewRecorder()

	handler.HandleTotalTransactionFees(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !dec(got["totalTransactionFeeAmount"]).Equal(dec("20")) {
		t.Errorf("expected total fees 20, got %s", got["totalTransactionFeeAmount"])
	}
}

func TestHandleTotalTransferAmount(t *testing.T) {
	two := int64(2)
	transactions := &MockTransactionRepo{
		ListFunc: func(ctx context.Context) ([]*transaction.Transaction, error) {
			return []*transaction.Transaction{
				{ID: 1, Amount: dec("-300"), OriginatingAccountID: 1, ResultingAccountID: &two, Reason: transaction.ReasonTransfer},
				{ID: 2, Amount: dec("-100"), OriginatingAccountID: 2, ResultingAccountID: &two, Reason: transaction.ReasonTransfer},
				{ID: 3, Amount: dec("500"), OriginatingAccountID: 1, Reason: transaction.ReasonDeposit},
			}, nil
		},
	}
	handler := newBankHandler(&MockBankRepo{}, nil, transactions)

	req := httptest.NewRequest(http.MethodGet, "/api/banks/total-transfer-amount", nil)
	w := httptest.NewRecorder()

	handler.HandleTotalTransferAmount(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !dec(got["totalTransferAmount"]).Equal(dec("400")) {
		t.Errorf("expected total transfers 400, got %s", got["totalTransferAmount"])
	}
}
