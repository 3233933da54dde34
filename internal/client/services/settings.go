package services

import (
	"context"

	"github.com/finanzas-network/fincli/internal/client/models"
)

// SettingsService manages the user's broker API credentials. The secret only
// ever travels to the backend, which stores it encrypted; the client never
// reads it back.
type SettingsService interface {
	// KeyStatus reports whether broker keys are already stored server-side.
	KeyStatus(ctx context.Context) (*models.KeyStatus, error)

	// SaveKeys stores (or replaces) the broker credentials.
	SaveKeys(ctx context.Context, broker, apiKey, apiSecret string) (*models.KeyStatus, error)

	// AccountSummary probes the broker connection with the stored keys.
	AccountSummary(ctx context.Context) (*models.AccountSummary, error)
}

type settingsService struct {
	gw Gateway
}

func NewSettingsService(gw Gateway) SettingsService {
	return &settingsService{gw: gw}
}

func (s *settingsService) KeyStatus(ctx context.Context) (*models.KeyStatus, error) {
	var status models.KeyStatus
	if err := s.gw.GetJSON(ctx, "/settings/api-keys/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *settingsService) SaveKeys(ctx context.Context, broker, apiKey, apiSecret string) (*models.KeyStatus, error) {
	payload := models.BrokerKeys{
		BrokerName: broker,
		APIKey:     apiKey,
		APISecret:  apiSecret,
	}
	var status models.KeyStatus
	if err := s.gw.PostJSON(ctx, "/settings/api-keys", payload, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *settingsService) AccountSummary(ctx context.Context) (*models.AccountSummary, error) {
	var summary models.AccountSummary
	if err := s.gw.GetJSON(ctx, "/portfolio/account-summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
