package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillpress/content-api/internal/api/metrics"
	"github.com/quillpress/content-api/internal/core/domain"
	"github.com/quillpress/content-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (r registerRequest) input() ports.RegisterInput {
	return ports.RegisterInput{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

func newAuthResponse(res *ports.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User:  actorResponse{ID: res.User.ID, Email: res.User.Email, Role: res.User.Role},
	}
}

// Register creates a new CLIENT account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), req.input())
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(res.User.Role)).Inc()
	return c.JSON(http.StatusCreated, newAuthResponse(res))
}

// RegisterAdmin creates a new ADMIN account. Requires the admin registration secret.
//
// @Summary      Register an administrator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerAdminRequest  true  "Admin registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.RegisterAdmin(c.Request().Context(), req.input(), req.AdminSecret)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(res.User.Role)).Inc()
	return c.JSON(http.StatusCreated, newAuthResponse(res))
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// empty fields fall through to the service so they fail like any other
	// bad credential pair
	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		return err
	case err != nil:
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, newAuthResponse(res))
}
