// File: internal/auth/oauth_service.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"uniconnect_backend/internal/common"
	"uniconnect_backend/internal/config"
	"uniconnect_backend/internal/platform/crypto"
	"uniconnect_backend/internal/shared"
	"uniconnect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const ProviderGoogle = "GOOGLE"

// GoogleUserInfoURL is a variable so tests can point it at a stub server.
var GoogleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// OAuthService handles the federated login flow against Google.
type OAuthService interface {
	GetGoogleLoginURL(c *gin.Context) (string, error)
	HandleGoogleCallback(c *gin.Context, code, state string) (*user.User, error)
}

type googleOAuthService struct {
	cfg    *config.Config
	users  *user.Service
	logger *zap.Logger
}

// NewOAuthService creates a new Google OAuth service.
func NewOAuthService(cfg *config.Config, users *user.Service, logger *zap.Logger) OAuthService {
	return &googleOAuthService{cfg: cfg, users: users, logger: logger}
}

func (s *googleOAuthService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"openid", "profile", "email"},
		Endpoint:     google.Endpoint,
	}
}

// GetGoogleLoginURL generates the Google consent URL and stores a CSRF state
// cookie on the response.
func (s *googleOAuthService) GetGoogleLoginURL(c *gin.Context) (string, error) {
	state, err := crypto.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	setOAuthCookie(c, s.cfg, s.cfg.OAuthStateCookieName, state)
	return s.oauthConfig().AuthCodeURL(state), nil
}

// HandleGoogleCallback validates the state, exchanges the code, fetches the
// Google profile and resolves it to exactly one local user.
func (s *googleOAuthService) HandleGoogleCallback(c *gin.Context, code, state string) (*user.User, error) {
	storedState, err := getOAuthCookie(c, s.cfg, s.cfg.OAuthStateCookieName)
	if err != nil || storedState != state {
		s.logger.Warn("OAuth state mismatch on Google callback")
		return nil, common.ErrUnauthorized.WithDetails("Invalid OAuth state.")
	}

	token, err := s.oauthConfig().Exchange(c.Request.Context(), code)
	if err != nil {
		s.logger.Error("Google code exchange failed", zap.Error(err))
		return nil, common.ErrUnauthorized.WithDetails("Google login failed.")
	}

	profile, err := s.fetchGoogleProfile(c.Request.Context(), token)
	if err != nil {
		s.logger.Error("Failed to fetch Google user info", zap.Error(err))
		return nil, common.ErrUnauthorized.WithDetails("Google login failed.")
	}

	return s.users.ResolveOAuth(c.Request.Context(), *profile)
}

func (s *googleOAuthService) fetchGoogleProfile(ctx context.Context, token *oauth2.Token) (*shared.OAuthProfile, error) {
	client := s.oauthConfig().Client(ctx, token)
	resp, err := client.Get(GoogleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching Google user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google user info returned status %s", resp.Status)
	}

	var info struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding Google user info: %w", err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, fmt.Errorf("Google user info missing subject or email")
	}

	return &shared.OAuthProfile{
		Provider:   ProviderGoogle,
		ProviderID: info.Sub,
		Email:      info.Email,
		Name:       info.Name,
		PictureURL: info.Picture,
	}, nil
}

// setOAuthCookie sets a secure cookie for the OAuth state.
func setOAuthCookie(c *gin.Context, cfg *config.Config, name, value string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   cfg.OAuthCookieDomain,
		MaxAge:   cfg.OAuthCookieMaxAgeMinutes * 60,
		Secure:   cfg.OAuthCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// getOAuthCookie retrieves and deletes an OAuth cookie.
func getOAuthCookie(c *gin.Context, cfg *config.Config, name string) (string, error) {
	cookie, err := c.Request.Cookie(name)
	if err != nil {
		return "", fmt.Errorf("%s cookie not found: %w", name, err)
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   cfg.OAuthCookieDomain,
		MaxAge:   -1,
		Secure:   cfg.OAuthCookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return cookie.Value, nil
}
