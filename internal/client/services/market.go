package services

import (
	"context"

	"github.com/finanzas-network/fincli/internal/client/models"
)

// wantedQuotes are the rate cards the dashboard shows, in display order.
var wantedQuotes = []string{"Oficial", "Blue", "MEP", "CCL"}

// MarketService exposes public market data.
type MarketService interface {
	// DollarQuotes returns the dashboard's exchange-rate cards, filtered to
	// the tracked rate names and in their display order.
	DollarQuotes(ctx context.Context) ([]models.DollarQuote, error)
}

type marketService struct {
	gw Gateway
}

func NewMarketService(gw Gateway) MarketService {
	return &marketService{gw: gw}
}

// DollarQuotes fetches /mercado/dolar. The endpoint is public, but the call
// still goes through the gateway so an existing token rides along like on
// every other request.
func (m *marketService) DollarQuotes(ctx context.Context) ([]models.DollarQuote, error) {
	var all []models.DollarQuote
	if err := m.gw.GetJSON(ctx, "/mercado/dolar", &all); err != nil {
		return nil, err
	}

	byName := make(map[string]models.DollarQuote, len(all))
	for _, q := range all {
		byName[q.Name] = q
	}

	quotes := make([]models.DollarQuote, 0, len(wantedQuotes))
	for _, name := range wantedQuotes {
		if q, ok := byName[name]; ok {
			quotes = append(quotes, q)
		}
	}
	return quotes, nil
}
