package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tastemap/internal/config"
	"tastemap/internal/flash"
	"tastemap/internal/httputil"
	"tastemap/internal/model"
	"tastemap/internal/service"
)

// AuthHandler groups sign-up/sign-in/logout endpoints and their dependencies.
type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
	config      *config.Config
}

// NewAuthHandler wires dependencies for authentication endpoints.
func NewAuthHandler(userService *service.UserService, authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		config:      cfg,
	}
}

// SignUp handles the registration form.
// POST /signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	req := model.SignUpRequest{
		Name:          strings.TrimSpace(r.FormValue("name")),
		Email:         strings.TrimSpace(r.FormValue("email")),
		Password:      r.FormValue("password"),
		PasswordCheck: r.FormValue("passwordCheck"),
	}

	if req.Name == "" {
		httputil.WriteBadRequest(w, "Name is required")
		return
	}
	if req.Email == "" {
		httputil.WriteBadRequest(w, "Email is required")
		return
	}
	if req.Password == "" {
		httputil.WriteBadRequest(w, "Password is required")
		return
	}

	if _, err := h.userService.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, model.ErrPasswordMismatch):
			httputil.WriteBadRequest(w, "Passwords do not match")
		case errors.Is(err, model.ErrEmailExists):
			httputil.WriteConflict(w, "Email already exists")
		default:
			httputil.WriteInternalError(w, "Failed to sign up")
		}
		return
	}

	flash.Set(w, flash.Success("Account registered successfully"))
	http.Redirect(w, r, "/signin", http.StatusFound)
}

// SignIn handles the login form. On success it sets the auth cookies and
// sends the browser to the restaurant listing; bad credentials flash an
// error and return to the sign-in page.
// POST /signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httputil.WriteBadRequest(w, "Invalid form data")
		return
	}

	req := model.SignInRequest{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	if req.Email == "" || req.Password == "" {
		httputil.WriteBadRequest(w, "Email and password are required")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			flash.Set(w, flash.Error("Incorrect email or password"))
			http.Redirect(w, r, "/signin", http.StatusFound)
			return
		}
		httputil.WriteInternalError(w, "Failed to sign in")
		return
	}

	deviceInfo := r.Header.Get("User-Agent")
	ipAddress := h.getClientIP(r)

	tokenPair, err := h.authService.GenerateTokenPair(r.Context(), user.ID, deviceInfo, ipAddress)
	if err != nil {
		httputil.WriteInternalError(w, "Failed to generate tokens")
		return
	}

	h.setAuthCookies(w, tokenPair)
	flash.Set(w, flash.Success("Signed in successfully"))
	http.Redirect(w, r, "/restaurants", http.StatusFound)
}

// Refresh rotates the refresh token and returns a new pair.
// The token comes from the refresh_token cookie or a JSON body.
// POST /auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		httputil.WriteBadRequest(w, "Refresh token is required")
		return
	}

	deviceInfo := r.Header.Get("User-Agent")
	ipAddress := h.getClientIP(r)

	tokenPair, _, err := h.authService.RefreshTokens(r.Context(), refreshToken, deviceInfo, ipAddress)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRefreshTokenNotFound):
			httputil.WriteUnauthorized(w, "Invalid refresh token")
		case errors.Is(err, model.ErrRefreshTokenExpired):
			httputil.WriteUnauthorizedWithCode(w, model.CodeTokenExpired, "Refresh token has expired")
		case errors.Is(err, model.ErrRefreshTokenReused):
			httputil.WriteUnauthorizedWithCode(w, model.CodeTokenReused, "Refresh token reuse detected. Please sign in again.")
		default:
			httputil.WriteInternalError(w, "Failed to refresh tokens")
		}
		return
	}

	h.setAuthCookies(w, tokenPair)
	httputil.WriteJSON(w, http.StatusOK, tokenPair)
}

// Logout revokes the refresh token, clears the auth cookies, and returns to
// the sign-in page. A token that is already gone still logs out cleanly.
// POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		if err := h.authService.RevokeRefreshToken(r.Context(), cookie.Value); err != nil &&
			!errors.Is(err, model.ErrRefreshTokenNotFound) {
			httputil.WriteInternalError(w, "Failed to logout")
			return
		}
	}

	h.clearAuthCookies(w)
	flash.Set(w, flash.Success("Signed out successfully"))
	http.Redirect(w, r, "/signin", http.StatusFound)
}

func (h *AuthHandler) setAuthCookies(w http.ResponseWriter, tokenPair *model.TokenPair) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    tokenPair.AccessToken,
		Path:     "/",
		MaxAge:   h.config.AccessTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    tokenPair.RefreshToken,
		Path:     "/",
		MaxAge:   h.config.RefreshTokenMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{"access_token", "refresh_token"} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// getClientIP extracts the client IP from the request
func (h *AuthHandler) getClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	// RemoteAddr is "IP:port"
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
