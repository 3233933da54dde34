package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/finanzas-network/fincli/internal/common"
)

// Keys shows whether broker API keys are stored server-side and optionally
// replaces them. The secret travels to the backend once and is never read
// back; the backend stores it encrypted.
func (a *App) Keys(ctx context.Context) error {
	status, err := a.settings.KeyStatus(ctx)
	if err != nil {
		surfaceDetail(a.out, err, "Could not check the API key status.")
		return err
	}

	if status.IsSaved {
		fmt.Fprintln(a.out, "Your broker API keys are saved and encrypted.")
	} else {
		fmt.Fprintln(a.out, "No broker API keys stored yet.")
	}

	answer, err := GetTextWithDefault(a.reader, "Update keys? (y/N)", "n", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}

	broker, err := GetTextWithDefault(a.reader, "Broker", "ppi", a.out)
	if err != nil {
		return err
	}
	apiKey, err := getSimpleText(a.reader, "API key", a.out)
	if err != nil {
		return err
	}
	secret, err := getPassword(a.out, "API secret: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(secret)

	if apiKey == "" || len(secret) == 0 {
		fmt.Fprintln(a.out, "Both the key and the secret are required.")
		return common.ErrValidation
	}

	saved, err := a.settings.SaveKeys(ctx, broker, apiKey, string(secret))
	if err != nil {
		surfaceDetail(a.out, err, "Could not save the keys. Try again later.")
		return err
	}
	if saved.IsSaved {
		fmt.Fprintln(a.out, "API keys saved and encrypted.")
	}
	return nil
}

// Account probes the broker connection using the stored keys, the same call
// the settings page's "test connection" button makes.
func (a *App) Account(ctx context.Context) error {
	summary, err := a.settings.AccountSummary(ctx)
	if err != nil {
		surfaceDetail(a.out, err, "Unknown error while testing the connection.")
		return err
	}
	fmt.Fprintf(a.out, "Connection OK. Balance: %s\n", formatARS(summary.Balance))
	return nil
}
