package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DollarQuote is one exchange-rate card from GET /mercado/dolar.
// Field names on the wire are the backend's Spanish originals.
type DollarQuote struct {
	Name      string          `json:"nombre"`
	Buy       decimal.Decimal `json:"compra"`
	Sell      decimal.Decimal `json:"venta"`
	UpdatedAt time.Time       `json:"fechaActualizacion"`
}
