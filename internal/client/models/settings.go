package models

import "github.com/shopspring/decimal"

// KeyStatus reports whether broker API keys are already stored server-side
// (GET /settings/api-keys/status). The keys themselves never travel back to
// the client.
type KeyStatus struct {
	IsSaved bool `json:"is_saved"`
}

// BrokerKeys is the payload for POST /settings/api-keys. The backend
// encrypts the secret at rest.
type BrokerKeys struct {
	BrokerName string `json:"broker_name"`
	APIKey     string `json:"api_key"`
	APISecret  string `json:"api_secret"`
}

// AccountSummary is the broker connection probe result
// (GET /portfolio/account-summary).
type AccountSummary struct {
	Balance decimal.Decimal `json:"saldo"`
}
