package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/finanzas-network/fincli/internal/client/models"
	"github.com/finanzas-network/fincli/internal/client/services"
	"github.com/finanzas-network/fincli/internal/common"
)

// Backtest walks the user through the strategy form and runs one simulation
// on the backend, then renders the metrics and the closed trades.
func (a *App) Backtest(ctx context.Context) error {
	symbol, err := GetTextWithDefault(a.reader, "Symbol", "GGAL", a.out)
	if err != nil {
		return err
	}
	interval, err := GetTextWithDefault(a.reader, "Interval (1d, 4h, 15m)", "1d", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Strategies:")
	for _, s := range services.Strategies {
		fmt.Fprintf(a.out, "  %-10s %s\n", s.Code, s.Name)
	}
	code, err := GetTextWithDefault(a.reader, "Strategy", "MACD", a.out)
	if err != nil {
		return err
	}
	def, ok := services.StrategyByCode(strings.ToUpper(code))
	if !ok {
		fmt.Fprintln(a.out, "Unknown strategy:", code)
		return common.ErrValidation
	}

	params := make(map[string]float64, len(def.Params))
	for _, p := range def.Params {
		raw, err := GetTextWithDefault(a.reader, p.Name,
			strconv.FormatFloat(p.Default, 'f', -1, 64), a.out)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid number for %s: %s\n", p.Name, raw)
			return common.ErrValidation
		}
		params[p.Name] = v
	}

	capital, err := a.promptDecimal("Initial capital", "1000")
	if err != nil {
		return err
	}
	positionSize, err := a.promptDecimal("Position size (1 = 100%)", "1")
	if err != nil {
		return err
	}

	req := models.BacktestRequest{
		Symbol:         strings.ToUpper(symbol),
		Interval:       interval,
		StrategyName:   def.Code,
		InitialCapital: capital,
		PositionSize:   positionSize,
		StrategyParams: params,
	}

	fmt.Fprintln(a.out, "Running simulation...")
	result, err := a.backtest.Run(ctx, req)
	if err != nil {
		surfaceDetail(a.out, err, "The backtest could not be run.")
		return err
	}

	a.renderBacktest(result)
	return nil
}

func (a *App) promptDecimal(prompt, def string) (decimal.Decimal, error) {
	raw, err := GetTextWithDefault(a.reader, prompt, def, a.out)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid number: %s\n", raw)
		return decimal.Zero, common.ErrValidation
	}
	return d, nil
}

func (a *App) renderBacktest(r *models.BacktestResult) {
	fmt.Fprintf(a.out, "Strategy: %s\n", r.StrategyName)
	fmt.Fprintf(a.out, "Profit/loss: %s (%s)\n", formatARS(r.ProfitLoss), formatPct(r.ProfitLossPct))
	fmt.Fprintf(a.out, "Win rate: %s\n", formatPct(r.WinRate))
	fmt.Fprintf(a.out, "Max drawdown: %s\n", formatPct(r.MaxDrawdown))

	if len(r.Trades) == 0 {
		fmt.Fprintln(a.out, "No trades were closed in the simulated period.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTRY\tEXIT\tENTRY PRICE\tEXIT PRICE\tPROFIT")
	for _, t := range r.Trades {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.EntryTime.Format("2006-01-02"),
			t.ExitTime.Format("2006-01-02"),
			formatARS(t.EntryPrice),
			formatARS(t.ExitPrice),
			formatPct(t.ProfitPct))
	}
	tw.Flush()
}
