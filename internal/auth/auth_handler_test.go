package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	SignupFn func(ctx context.Context, req auth.SignupRequest) (auth.UserResponse, error)
	LoginFn  func(ctx context.Context, email, password string) (string, auth.UserResponse, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, req auth.SignupRequest) (auth.UserResponse, error) {
	return f.SignupFn(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
	return f.LoginFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			SignupFn: func(ctx context.Context, req auth.SignupRequest) (auth.UserResponse, error) {
				assert.Equal(t, "Jane Doe", req.Name)
				return auth.UserResponse{Name: req.Name, Email: req.Email}, nil
			},
		}
		h := auth.NewHandler(svc)

		body := `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`
		c, w := newTestContext(t, http.MethodPost, "/api/auth/signup", body)

		h.Signup(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "User registered successfully")
		assert.Contains(t, w.Body.String(), "jane@example.com")
		// Password never echoed back.
		assert.NotContains(t, w.Body.String(), "password123")
	})

	t.Run("duplicate email answers 400", func(t *testing.T) {
		svc := &fakeAuthService{
			SignupFn: func(ctx context.Context, req auth.SignupRequest) (auth.UserResponse, error) {
				return auth.UserResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}
		h := auth.NewHandler(svc)

		body := `{"name":"Jane Doe","email":"jane@example.com","password":"password123"}`
		c, w := newTestContext(t, http.MethodPost, "/api/auth/signup", body)

		h.Signup(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email already exists")
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeAuthService{}
		h := auth.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/auth/signup", `{}`)

		h.Signup(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success includes token", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
				return "signed.jwt.token", auth.UserResponse{Name: "Jane Doe", Email: email}, nil
			},
		}
		h := auth.NewHandler(svc)

		body := `{"email":"jane@example.com","password":"password123"}`
		c, w := newTestContext(t, http.MethodPost, "/api/auth/login", body)

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Login successful")
		assert.Contains(t, w.Body.String(), "signed.jwt.token")
	})

	t.Run("invalid credentials answer 401", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (string, auth.UserResponse, error) {
				return "", auth.UserResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		h := auth.NewHandler(svc)

		body := `{"email":"jane@example.com","password":"wrong"}`
		c, w := newTestContext(t, http.MethodPost, "/api/auth/login", body)

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email or password")
	})
}
