package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BacktestRequest configures one strategy simulation run
// (POST /bot/backtest).
type BacktestRequest struct {
	Symbol         string             `json:"symbol"`
	Interval       string             `json:"interval"`
	StrategyName   string             `json:"strategy_name"`
	InitialCapital decimal.Decimal    `json:"initial_capital"`
	PositionSize   decimal.Decimal    `json:"position_size"`
	StrategyParams map[string]float64 `json:"strategy_params"`
}

// BacktestResult is the backend's simulation outcome.
type BacktestResult struct {
	StrategyName  string          `json:"strategy_name"`
	ProfitLoss    decimal.Decimal `json:"profit_loss"`
	ProfitLossPct decimal.Decimal `json:"profit_loss_pct"`
	WinRate       decimal.Decimal `json:"win_rate"`
	MaxDrawdown   decimal.Decimal `json:"max_drawdown"`
	Trades        []Trade         `json:"trades"`
}

// Trade is one closed position inside a backtest result.
type Trade struct {
	EntryTime  time.Time       `json:"entry_time"`
	ExitTime   time.Time       `json:"exit_time"`
	EntryPrice decimal.Decimal `json:"entry_price"`
	ExitPrice  decimal.Decimal `json:"exit_price"`
	Profit     decimal.Decimal `json:"profit"`
	ProfitPct  decimal.Decimal `json:"profit_pct"`
}
