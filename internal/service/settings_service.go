package service

import (
	"fmt"

	"github.com/fernet/fernet-go"

	"github.com/avdberg/Budget-Planner-Backend/internal/apperrors"
	"github.com/avdberg/Budget-Planner-Backend/internal/repository"
	"github.com/avdberg/Budget-Planner-Backend/internal/upbank"
)

// tokenSettingKey is the settings-table key the encrypted access token is
// stored under.
const tokenSettingKey = "upbank_access_token"

// SettingsService manages the persisted personal access token. The token is
// stored fernet-encrypted in the settings table; a token supplied through
// the environment is used as long as no stored token exists.
type SettingsService struct {
	settings *repository.SettingsRepository
	client   *upbank.Client
	keys     []*fernet.Key
}

// NewSettingsService creates a SettingsService. encryptionKey is a base64
// fernet key; it may be empty, in which case storing a token is disabled and
// only the environment-supplied token works.
func NewSettingsService(settings *repository.SettingsRepository, client *upbank.Client, encryptionKey string) (*SettingsService, error) {
	s := &SettingsService{settings: settings, client: client}
	if encryptionKey != "" {
		keys, err := fernet.DecodeKeys(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid settings encryption key: %w", err)
		}
		s.keys = keys
	}
	return s, nil
}

// LoadStoredToken reads the persisted token, if any, and installs it on the
// API client. Called once at startup; an absent token is not an error.
func (s *SettingsService) LoadStoredToken() error {
	if len(s.keys) == 0 {
		return nil
	}

	stored, found, err := s.settings.Get(tokenSettingKey)
	if err != nil {
		return fmt.Errorf("load stored token: %w", err)
	}
	if !found {
		return nil
	}

	token := fernet.VerifyAndDecrypt([]byte(stored), 0, s.keys)
	if token == nil {
		return fmt.Errorf("stored token failed decryption, re-save it via the settings endpoint")
	}
	s.client.SetToken(string(token))
	return nil
}

// SetToken encrypts and persists a new access token and installs it on the
// API client so the next refresh uses it immediately.
func (s *SettingsService) SetToken(token string) error {
	if token == "" {
		return apperrors.ErrTokenNotConfigured
	}
	if len(s.keys) == 0 {
		return fmt.Errorf("%w: no settings encryption key configured", apperrors.ErrFailedToStoreToken)
	}

	encrypted, err := fernet.EncryptAndSign([]byte(token), s.keys[0])
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreToken, err)
	}
	if err := s.settings.Set(tokenSettingKey, string(encrypted)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToStoreToken, err)
	}

	s.client.SetToken(token)
	return nil
}
