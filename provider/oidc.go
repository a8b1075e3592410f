package provider

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"golang.org/x/oauth2"
)

type oidcProvider struct {
	name       string
	capability Capability

	verifier     *oidc.IDTokenVerifier
	oauth2Config *oauth2.Config
}

func newOIDCProvider(ctx context.Context, cfg config.Provider) (Provider, error) {
	discovered, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, err
	}

	verifier := discovered.Verifier(&oidc.Config{
		ClientID: cfg.ClientID,
	})

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     discovered.Endpoint(),
		RedirectURL:  cfg.RedirectURL,
		Scopes:       scopes,
	}

	return &oidcProvider{
		name: cfg.Name,
		capability: Capability{
			Enabled:     cfg.Enabled,
			ShowOnLogin: cfg.ShowOnLogin,
		},
		verifier:     verifier,
		oauth2Config: oauth2Config,
	}, nil
}

func (p *oidcProvider) Name() string {
	return p.name
}

func (p *oidcProvider) Capability() Capability {
	return p.capability
}

func (p *oidcProvider) Challenge(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

func (p *oidcProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	if code == "" {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Missing authorization code")
	}
	token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeBadCredentials, "Failed to exchange authorization code")
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, internal.NewErrorf(internal.ErrorCodeBadCredentials, "Missing id_token in provider response")
	}
	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeBadCredentials, "Failed to verify ID token")
	}

	identity := Identity{
		Provider: p.name,
		Subject:  idToken.Subject,
	}
	name, email, err := structuredClaims(idToken)
	if err != nil {
		// Some providers hand back malformed profile claims. Fall back
		// to raw claim lookup for those rather than failing the whole
		// handshake.
		name, email = rawClaims(idToken)
	}
	identity.Name = name
	identity.Email = email
	return &identity, nil
}

// structuredClaims is the preferred extraction path: decode the standard
// profile claims directly.
func structuredClaims(idToken *oidc.IDToken) (string, string, error) {
	var claims struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", "", err
	}
	return claims.Name, claims.Email, nil
}

// rawClaims is the fallback extraction path: pull whatever string values
// exist under the standard keys.
func rawClaims(idToken *oidc.IDToken) (string, string) {
	var raw map[string]interface{}
	if err := idToken.Claims(&raw); err != nil {
		return "", ""
	}
	name, _ := raw["name"].(string)
	email, _ := raw["email"].(string)
	if email == "" {
		email, _ = raw["preferred_username"].(string)
	}
	return name, email
}
