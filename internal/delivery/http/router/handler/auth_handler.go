package handler

import (
	"log/slog"
	"net/http"

	"hifybe/config"
	"hifybe/internal/delivery/http/middleware"
	"hifybe/internal/delivery/http/response"
	"hifybe/internal/domain/entity"
	"hifybe/internal/domain/service"
	"hifybe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc       usecase.AuthUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// AuthHandlerParams defines the dependencies for the auth handler.
type AuthHandlerParams struct {
	fx.In

	Usecase  usecase.AuthUsecase
	TokenSvc service.TokenService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:       params.Usecase,
		tokenSvc: params.TokenSvc,
		cfg:      params.Config,
		logger:   params.Logger,
	}
}

type registerRequest struct {
	GivenName  string `json:"nombre" validate:"required"`
	FamilyName string `json:"apellidos"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles local account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid registration input")
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user, "Usuario registrado correctamente")
}

// Login handles password login and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid login input")
	}

	session, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(session.Token))

	return response.Success(c, http.StatusOK, session.User, "Inicio de sesión correcto")
}

// Logout clears the session cookie. Tokens are stateless so nothing is
// revoked server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.expiredSessionCookie())

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// GoogleLogin redirects the browser to Google's consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	return h.providerLogin(c, entity.AuthProviderGoogle)
}

// GoogleCallback completes the Google authorization-code flow.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	return h.providerCallback(c, entity.AuthProviderGoogle)
}

// SpotifyLogin redirects the browser to Spotify's consent screen.
func (h *AuthHandler) SpotifyLogin(c echo.Context) error {
	return h.providerLogin(c, entity.AuthProviderSpotify)
}

// SpotifyCallback completes the Spotify authorization-code flow.
func (h *AuthHandler) SpotifyCallback(c echo.Context) error {
	return h.providerCallback(c, entity.AuthProviderSpotify)
}

func (h *AuthHandler) providerLogin(c echo.Context, provider entity.AuthProvider) error {
	authURL, err := h.uc.AuthorizationURL(provider)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// providerCallback is browser-facing: the provider redirects here, so
// failures redirect back to the frontend login page instead of returning
// JSON nobody renders.
func (h *AuthHandler) providerCallback(c echo.Context, provider entity.AuthProvider) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")

	session, err := h.uc.FederatedCallback(c.Request().Context(), provider, state, code)
	if err != nil {
		h.logger.Warn("federated login failed",
			slog.String("provider", string(provider)),
			slog.String("error", err.Error()),
		)

		return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Frontend.URL+"/login?error="+string(provider)+"_auth_failed")
	}

	c.SetCookie(h.sessionCookie(session.Token))

	return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Frontend.URL)
}

// sessionCookie builds the cross-site session cookie. SameSite=None plus
// Secure because frontend and API live on different origins.
func (h *AuthHandler) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   int(h.tokenSvc.SessionDuration().Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func (h *AuthHandler) expiredSessionCookie() *http.Cookie {
	cookie := h.sessionCookie("")
	cookie.MaxAge = -1

	return cookie
}
