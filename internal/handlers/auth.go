package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"golang.org/x/oauth2"

	"seoscope/internal/config"
)

// AuthHandler runs the OIDC login flow. The dashboard is single-tenant:
// verified claims go straight into the session, there is no user table.
type AuthHandler struct {
	provider     *oidc.Provider
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
	cfg          *config.Config
}

// identityClaims is the subset of OIDC claims the dashboard keeps, from the
// ID token first and the userinfo endpoint as a fallback.
type identityClaims struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// NewAuthHandler discovers the issuer and prepares the OAuth2 config.
func NewAuthHandler(ctx context.Context, cfg *config.Config) (*AuthHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		provider: provider,
		oauth2Config: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		cfg:      cfg,
	}, nil
}

// Login stores a fresh state nonce in the session and sends the browser to
// the identity provider.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	state := randomState()
	sess.Set("oauth_state", state)

	return c.Redirect().To(h.oauth2Config.AuthCodeURL(state))
}

// Callback exchanges the authorization code, verifies the ID token, and
// writes the identity claims into the session.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	saved, _ := sess.Get("oauth_state").(string)
	if saved == "" || saved != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}
	sess.Delete("oauth_state")

	token, err := h.oauth2Config.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}
	idToken, err := h.verifier.Verify(c.Context(), rawIDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}

	var claims identityClaims
	if err := idToken.Claims(&claims); err != nil {
		return err
	}
	h.fillFromUserInfo(c.Context(), token, &claims)

	if claims.Sub == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing sub claim")
	}

	sess.Set("user_sub", claims.Sub)
	sess.Set("user_email", claims.Email)
	sess.Set("user_name", claims.Name)
	sess.Set("user_picture", claims.Picture)

	target := "/"
	if redirect, ok := sess.Get("redirect_after_login").(string); ok && redirect != "" {
		target = redirect
		sess.Delete("redirect_after_login")
	}
	return c.Redirect().To(target)
}

// fillFromUserInfo fills claims some providers leave out of the ID token
// (email and picture in particular). Best effort.
func (h *AuthHandler) fillFromUserInfo(ctx context.Context, token *oauth2.Token, claims *identityClaims) {
	info, err := h.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
	if err != nil {
		slog.Warn("userinfo fetch failed", "error", err)
		return
	}

	var extra identityClaims
	if err := info.Claims(&extra); err != nil {
		return
	}
	if claims.Email == "" {
		claims.Email = extra.Email
	}
	if claims.Name == "" {
		claims.Name = extra.Name
	}
	if claims.Picture == "" {
		claims.Picture = extra.Picture
	}
}

// Logout clears the user session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/")
}

func randomState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)
}
