package service

import (
	"context"
	"encoding/json"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/user/credential"
	"github.com/gofrs/uuid"
	"github.com/nbutton23/zxcvbn-go"
)

type service struct {
	cfg config.Credential
	cr  credential.Repository
}

func NewCredentialService(cfg config.Credential, cr credential.Repository) credential.Service {
	return &service{
		cfg: cfg,
		cr:  cr,
	}
}

func (s *service) CreatePassword(ctx context.Context, accountID uuid.UUID, password string, identifiers []credential.Identifier) (*credential.Credential, error) {
	// Inputs feed the strength estimator so a password matching the
	// user's own identifiers scores low
	var ids []string
	for _, i := range identifiers {
		ids = append(ids, i.Value)
	}
	passStrength := zxcvbn.PasswordStrength(password, ids)
	if passStrength.Score <= s.cfg.MinimumScore {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Password provided is too weak")
	}
	newPass, err := generateFromPassword(password, s.cfg.Argon)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to generate a hashed password")
	}
	jsonPass, err := json.Marshal(credential.CredentialPassword{
		HashedPassword: newPass,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to JSON encode hashed password")
	}
	newCredential := credential.Credential{
		Type:        credential.Password,
		AccountID:   accountID,
		Identifiers: identifiers,
		Values:      string(jsonPass),
	}
	created, err := s.cr.Create(ctx, newCredential)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Invalid email/username provided")
	}
	return created, nil
}

func (s *service) ComparePassword(ctx context.Context, accountID uuid.UUID, password string) error {
	creds, err := s.cr.GetWithAccountID(ctx, credential.Password, accountID)
	if err != nil || len(creds) == 0 {
		return internal.WrapErrorf(err, internal.ErrorCodeBadCredentials, "Invalid email/username provided")
	}
	var hashed credential.CredentialPassword
	if err := json.Unmarshal([]byte(creds[0].Values), &hashed); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to decode password credential")
	}
	match, err := comparePasswordAndHash(password, hashed.HashedPassword)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to compare password and hash")
	}
	if !match {
		return internal.NewErrorf(internal.ErrorCodeBadCredentials, "Wrong password provided")
	}
	return nil
}

func (s *service) RemovePassword(ctx context.Context, accountID uuid.UUID) error {
	creds, err := s.cr.GetWithAccountID(ctx, credential.Password, accountID)
	if err != nil || len(creds) == 0 {
		// Nothing to remove
		return nil
	}
	for _, cred := range creds {
		if err := s.cr.Delete(ctx, cred.ID); err != nil {
			return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to remove password credential")
		}
	}
	return nil
}

func (s *service) CreateExternal(ctx context.Context, accountID uuid.UUID, provider string, subject string) (*credential.Credential, error) {
	values, err := json.Marshal(credential.CredentialExternal{
		Provider: provider,
		Subject:  subject,
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to JSON encode external credential")
	}
	created, err := s.cr.Create(ctx, credential.Credential{
		Type:      credential.External,
		AccountID: accountID,
		Values:    string(values),
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeConflict, "External account is already linked")
	}
	return created, nil
}

func (s *service) FindExternal(ctx context.Context, provider string, subject string) (*credential.Credential, error) {
	found, err := s.cr.GetExternal(ctx, provider, subject)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "No account is linked to this external identity")
	}
	return found, nil
}

func (s *service) Externals(ctx context.Context, accountID uuid.UUID) ([]credential.Credential, error) {
	creds, err := s.cr.GetWithAccountID(ctx, credential.External, accountID)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to list external credentials")
	}
	return creds, nil
}

func (s *service) ReplaceExternal(ctx context.Context, accountID uuid.UUID, provider string, subject string) (*credential.Credential, bool, error) {
	existing, err := s.cr.GetWithAccountID(ctx, credential.External, accountID)
	if err != nil {
		return nil, false, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to list external credentials")
	}
	for _, cred := range existing {
		if err := s.cr.Delete(ctx, cred.ID); err != nil {
			return nil, false, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to remove previous external credential")
		}
	}
	created, err := s.CreateExternal(ctx, accountID, provider, subject)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
