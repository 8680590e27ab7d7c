package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/lightbnb/api/internal/entity"
	"github.com/lightbnb/api/internal/repository"
	"github.com/lightbnb/api/internal/service"
)

func TestUsersHandler_GetByID(t *testing.T) {
	repo := &stubUsersRepo{user: &entity.User{ID: 3, Name: "Dominic Parks", Email: "victoriablackwell@outlook.com", Password: "secret-hash"}}
	handler := NewUsersHandler(service.NewUserService(repo))

	c, rec := newContext(http.MethodGet, "/users/3", "")
	if err := handler.GetByID(withIDParam(c, "/users/:id", "3")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Fatalf("password hash must not be serialized: %s", rec.Body.String())
	}

	var payload struct {
		Data entity.User `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data.ID != 3 || payload.Data.Email != "victoriablackwell@outlook.com" {
		t.Fatalf("unexpected payload: %+v", payload.Data)
	}

	c, rec = newContext(http.MethodGet, "/users/abc", "")
	_ = handler.GetByID(withIDParam(c, "/users/:id", "abc"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", rec.Code)
	}

	repo.user, repo.err = nil, repository.ErrUserNotFound
	c, rec = newContext(http.MethodGet, "/users/4", "")
	_ = handler.GetByID(withIDParam(c, "/users/:id", "4"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUsersHandler_GetByEmail(t *testing.T) {
	repo := &stubUsersRepo{user: &entity.User{ID: 1, Email: "tristanjacobs@gmail.com"}}
	handler := NewUsersHandler(service.NewUserService(repo))

	c, rec := newContext(http.MethodGet, "/users?email=TristanJacobs@gmail.com", "")
	if err := handler.GetByEmail(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if repo.lastEmail != "TristanJacobs@gmail.com" {
		t.Fatalf("expected exact lookup, got %q", repo.lastEmail)
	}

	c, rec = newContext(http.MethodGet, "/users", "")
	_ = handler.GetByEmail(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when email missing, got %d", rec.Code)
	}

	repo.err = context.DeadlineExceeded
	c, rec = newContext(http.MethodGet, "/users?email=a@example.com", "")
	_ = handler.GetByEmail(c)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "deadline") {
		t.Fatalf("internal cause must not leak: %s", rec.Body.String())
	}
}

func TestUsersHandler_Create(t *testing.T) {
	repo := &stubUsersRepo{}
	handler := NewUsersHandler(service.NewUserService(repo))

	c, rec := newContext(http.MethodPost, "/users", `{"name":"Kay","email":"kay@example.com","password":"password"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	c, rec = newContext(http.MethodPost, "/users", `{"name":"Kay","email":"nope","password":"password"}`)
	_ = handler.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", rec.Code)
	}
	var payload struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Data["email"] == "" {
		t.Fatalf("expected field detail for email, got %v", payload.Data)
	}

	c, rec = newContext(http.MethodPost, "/users", `{"name":`)
	_ = handler.Create(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}

	repo.err = repository.ErrEmailDuplicate
	c, rec = newContext(http.MethodPost, "/users", `{"name":"Kay","email":"kay@example.com","password":"password"}`)
	_ = handler.Create(c)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
