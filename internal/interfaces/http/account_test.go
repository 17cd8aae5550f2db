package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankd/internal/domain/account"
)

func newAccountHandler(repo *MockAccountRepo) *AccountHandler {
	return NewAccountHandler(account.NewService(repo))
}

func TestHandleCreateAccount(t *testing.T) {
	repo := &MockAccountRepo{
		CreateFunc: func(ctx context.Context, params account.CreateParams) (*account.Account, error) {
			return &account.Account{ID: 1, UserName: params.UserName, Balance: params.Balance, BankID: params.BankID}, nil
		},
	}
	handler := newAccountHandler(repo)

	body := `{"userName": "alice", "balance": "500", "bankId": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCreateAccount(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var got account.Account
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.UserName != "alice" {
		t.Errorf("expected userName %q, got %q", "alice", got.UserName)
	}
	if !got.Balance.Equal(dec("500")) {
		t.Errorf("expected balance 500, got %s", got.Balance)
	}
}

func TestHandleCreateAccount_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "MissingUserName", body: `{"userName": "", "balance": "500", "bankId": 1}`},
		{name: "MissingBank", body: `{"userName": "alice", "balance": "500", "bankId": 0}`},
		{name: "InvalidBody", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			repo := &MockAccountRepo{
				CreateFunc: func(ctx context.Context, params account.CreateParams) (*account.Account, error) {
					created = true
					return nil, nil
				},
			}
			handler := newAccountHandler(repo)

			req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.HandleCreateAccount(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
			if created {
				t.Error("expected repository create not to be called")
			}
		})
	}
}

func TestHandleGetAccount(t *testing.T) {
	repo := accountsByID(&account.Account{ID: 5, UserName: "bob", Balance: dec("250"), BankID: 2})
	handler := newAccountHandler(repo)

	t.Run("Found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/5", nil)
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		handler.HandleGetAccount(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var got account.Account
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if got.ID != 5 {
			t.Errorf("expected account 5, got %d", got.ID)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/6", nil)
		req.SetPathValue("id", "6")
		w := httptest.NewRecorder()

		handler.HandleGetAccount(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}

func TestHandleUpdateAccount_NotFound(t *testing.T) {
	repo := &MockAccountRepo{
		UpdateFunc: func(ctx context.Context, id int64, params account.UpdateParams) (*account.Account, error) {
			return nil, account.ErrAccountNotFound
		},
	}
	handler := newAccountHandler(repo)

	body := `{"userName": "alice", "balance": "500", "bankId": 1}`
	req := httptest.NewRequest(http.MethodPut, "/api/accounts/42", strings.NewReader(body))
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	handler.HandleUpdateAccount(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleDeleteAccount(t *testing.T) {
	repo := &MockAccountRepo{
		ExistsFunc: func(ctx context.Context, id int64) (bool, error) {
			return id == 5, nil
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	handler := newAccountHandler(repo)

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/accounts/5", nil)
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		handler.HandleDeleteAccount(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected status 204, got %d", w.Code)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/accounts/6", nil)
		req.SetPathValue("id", "6")
		w := httptest.NewRecorder()

		handler.HandleDeleteAccount(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})
}
