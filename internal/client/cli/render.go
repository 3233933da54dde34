package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/finanzas-network/fincli/internal/client/api"
)

// formatARS renders a decimal amount as Argentine pesos.
func formatARS(d decimal.Decimal) string {
	return money.New(d.Shift(2).Round(0).IntPart(), money.ARS).Display()
}

// formatPct renders a percentage with two decimals.
func formatPct(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// surfaceDetail prints the backend's detail message when the error carries
// one, otherwise the fallback message.
func surfaceDetail(w io.Writer, err error, fallback string) {
	var st *api.StatusError
	if errors.As(err, &st) && st.Detail != "" {
		fmt.Fprintln(w, st.Detail)
		return
	}
	fmt.Fprintln(w, fallback)
}
