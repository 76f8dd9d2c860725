package account

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/maternity/records/internal/platform/auth"
	"github.com/maternity/records/internal/validation"
)

// Handler serves registration, sessions and email verification. The
// bodies are plain JSON; this surface predates the status envelope.
type Handler struct {
	svc         *Service
	frontendURL string
}

func NewHandler(svc *Service, frontendURL string) *Handler {
	return &Handler{svc: svc, frontendURL: frontendURL}
}

// RegisterRoutes wires the public endpoints directly on api and the rest
// behind requireAuth.
func (h *Handler) RegisterRoutes(api *echo.Group, requireAuth echo.MiddlewareFunc) {
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/verify-email/:id/:hash", h.VerifyEmail)

	authed := api.Group("", requireAuth)
	authed.POST("/logout", h.Logout)
	authed.POST("/email/verification-notification", h.ResendVerification)
	authed.GET("/me", h.Me)
	authed.GET("/user", h.User)
}

func (h *Handler) Register(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	user, errs, err := h.svc.Register(c.Request().Context(), fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Validation failed",
			"errors":  errs,
		})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Registered successfully. Please verify your email.",
		"user":    user,
	})
}

func (h *Handler) Login(c echo.Context) error {
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
	}

	errs, err := validation.Validate(c.Request().Context(), fields, loginRules())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	email, _ := fields["email"].(string)
	password, _ := fields["password"].(string)

	token, user, err := h.svc.Login(c.Request().Context(), email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	jti := auth.TokenIDFromContext(c.Request().Context())
	if err := h.svc.Logout(c.Request().Context(), jti); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *Handler) VerifyEmail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid verification link"})
	}
	expires, err := strconv.ParseInt(c.QueryParam("expires"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid verification link"})
	}

	_, err = h.svc.VerifyEmail(c.Request().Context(), id, c.Param("hash"), expires, c.QueryParam("signature"))
	if errors.Is(err, ErrInvalidLink) || errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid verification link"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.Redirect(http.StatusFound, h.frontendURL+"/dashboard?verified=1")
}

func (h *Handler) ResendVerification(c echo.Context) error {
	uid := auth.UserIDFromContext(c.Request().Context())
	if err := h.svc.ResendVerification(c.Request().Context(), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Verification link sent!"})
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.svc.Get(c.Request().Context(), auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthenticated"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":           user,
		"email_verified": user.Verified(),
	})
}

// User returns the account only once the email has been verified.
func (h *Handler) User(c echo.Context) error {
	user, err := h.svc.Get(c.Request().Context(), auth.UserIDFromContext(c.Request().Context()))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Unauthenticated"})
	}
	if !user.Verified() {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Your email address is not verified."})
	}
	return c.JSON(http.StatusOK, user)
}
