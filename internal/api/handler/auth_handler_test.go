package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

const validRegistration = `{"first_name":"Alice","last_name":"Liddell","email":"alice@example.com","password":"pass123","confirm_password":"pass123"}`

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.FirstName != "Alice" || in.Email != "alice@example.com" || in.ConfirmPassword != "pass123" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.AuthResult{
				Token: "signed-token",
				User:  domain.Actor{ID: 1, Email: in.Email, Role: domain.RoleClient},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/register", validRegistration)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.Role != domain.RoleClient {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "pass123") {
		t.Fatalf("response leaks the password: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	bodies := []string{
		`{"first_name":"Al1ce","last_name":"L","email":"a@example.com","password":"pass123","confirm_password":"pass123"}`,
		`{"first_name":"Alice","last_name":"L","email":"not-an-email","password":"pass123","confirm_password":"pass123"}`,
		`{"first_name":"Alice","last_name":"L","email":"a@example.com","password":"abc","confirm_password":"abc"}`,
		`{"first_name":"Alice","last_name":"L","email":"a@example.com","password":"pass123","confirm_password":"pass124"}`,
		`{not json`,
	}
	for _, body := range bodies {
		c, _ := newJSONContext(http.MethodPost, "/api/auth/register", body)
		err := handler.Register(c)
		if code := httpStatus(t, err); code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, code)
		}
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", validRegistration)
	if err := handler.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_RegisterAdmin_PassesSecret(t *testing.T) {
	stub := &stubAuthService{
		registerAdminFn: func(ctx context.Context, in ports.RegisterInput, secret string) (*ports.AuthResult, error) {
			if secret != "open-sesame" {
				t.Fatalf("unexpected secret %q", secret)
			}
			return &ports.AuthResult{Token: "t", User: domain.Actor{ID: 2, Email: in.Email, Role: domain.RoleAdmin}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.TrimSuffix(validRegistration, "}") + `,"admin_secret":"open-sesame"}`
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register-admin", body)
	if err := handler.RegisterAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "carol@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials")
			}
			return &ports.AuthResult{Token: "signed-token", User: domain.Actor{ID: 5, Email: email, Role: domain.RoleAdmin}}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"carol@example.com","password":"s3cret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.ID != 5 || resp.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"dave@example.com","password":"badpass"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must not render the error itself")
	}
}
