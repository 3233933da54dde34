package services

import (
	"context"

	"github.com/finanzas-network/fincli/internal/client/models"
)

// StrategyParam is one tunable of a strategy together with its default.
type StrategyParam struct {
	Name    string
	Default float64
}

// StrategyDef describes a strategy the backend can simulate. Params keeps
// the prompt order stable.
type StrategyDef struct {
	Code   string
	Name   string
	Params []StrategyParam
}

// Strategies is the catalog offered by the backtest form, mirroring the
// backend's supported set.
var Strategies = []StrategyDef{
	{
		Code: "RSI", Name: "RSI (mean reversion)",
		Params: []StrategyParam{
			{Name: "rsi_length", Default: 14},
			{Name: "rsi_buy", Default: 30},
			{Name: "rsi_sell", Default: 70},
		},
	},
	{
		Code: "MA_CROSS", Name: "Moving-average cross (trend)",
		Params: []StrategyParam{
			{Name: "fast_period", Default: 20},
			{Name: "slow_period", Default: 50},
		},
	},
	{
		Code: "MACD", Name: "MACD (momentum and trend)",
		Params: []StrategyParam{
			{Name: "fast", Default: 12},
			{Name: "slow", Default: 26},
			{Name: "signal", Default: 9},
		},
	},
}

// StrategyByCode looks a strategy up in the catalog.
func StrategyByCode(code string) (StrategyDef, bool) {
	for _, s := range Strategies {
		if s.Code == code {
			return s, true
		}
	}
	return StrategyDef{}, false
}

// BacktestService runs strategy simulations on the backend.
type BacktestService interface {
	Run(ctx context.Context, req models.BacktestRequest) (*models.BacktestResult, error)
}

type backtestService struct {
	gw Gateway
}

func NewBacktestService(gw Gateway) BacktestService {
	return &backtestService{gw: gw}
}

// Run submits the configuration and returns the simulation outcome. Backend
// rejections surface as *api.StatusError with the detail message intact.
func (b *backtestService) Run(ctx context.Context, req models.BacktestRequest) (*models.BacktestResult, error) {
	var result models.BacktestResult
	if err := b.gw.PostJSON(ctx, "/bot/backtest", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
