package networth

import "time"

// NetWorth is the service's aggregate of assets minus debts.
type NetWorth struct {
	TotalAssets  Amount    `json:"total_assets"`
	TotalDebts   Amount    `json:"total_debts"`
	NetWorth     Amount    `json:"net_worth"`
	Currency     string    `json:"currency"`
	CalculatedAt time.Time `json:"calculated_at"`
}

// Summary is the daily overview computed by the service.
type Summary struct {
	Date            time.Time `json:"date"`
	TotalAssets     Amount    `json:"total_assets"`
	TotalDebts      Amount    `json:"total_debts"`
	NetWorth        Amount    `json:"net_worth"`
	DailyProfitLoss Amount    `json:"daily_profit_loss"`
	TotalProfitLoss Amount    `json:"total_profit_loss"`
	Currency        string    `json:"currency"`
}

// Health is the free-form payload of the service health check.
type Health map[string]any
