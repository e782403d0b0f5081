package networth

import "time"

// AssetType is the kind of a tracked holding.
type AssetType string

const (
	AssetTypeStock      AssetType = "stock"
	AssetTypeProperty   AssetType = "property"
	AssetTypeRealEstate AssetType = "real_estate"
	AssetTypeCar        AssetType = "car"
	AssetTypeCash       AssetType = "cash"
	AssetTypeInvestment AssetType = "investment"
	AssetTypeCrypto     AssetType = "crypto"
	AssetTypeOther      AssetType = "other"
)

// AssetTypes lists the asset types offered when creating an asset.
var AssetTypes = []AssetType{
	AssetTypeStock,
	AssetTypeProperty,
	AssetTypeRealEstate,
	AssetTypeCar,
	AssetTypeCash,
	AssetTypeInvestment,
	AssetTypeCrypto,
	AssetTypeOther,
}

// AssetSource is the provenance of an asset's current value.
type AssetSource string

const (
	// SourceManual values are entered by the user.
	SourceManual AssetSource = "manual"
	// SourceMarketAPI values are fetched by the service from a market data provider.
	SourceMarketAPI AssetSource = "market_api"
)

// AssetSources lists the valid asset sources.
var AssetSources = []AssetSource{SourceManual, SourceMarketAPI}

// DefaultCurrency is used whenever a currency code is missing or unusable.
const DefaultCurrency = "USD"

// Asset is a holding as returned by the service. The client never creates
// identifiers, ID is always the service's.
type Asset struct {
	ID           string      `json:"id"`
	Type         AssetType   `json:"type"`
	Name         string      `json:"name"`
	BuyPrice     Amount      `json:"buy_price"`
	CurrentValue Amount      `json:"current_value"`
	Currency     string      `json:"currency"`
	Quantity     Amount      `json:"quantity"`
	PurchaseDate Date        `json:"purchase_date"`
	Source       AssetSource `json:"source"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TotalValue is the current value of the whole position.
func (a Asset) TotalValue() Amount { return CalculateTotalValue(a.CurrentValue, a.Quantity) }

// Invested is what the whole position cost.
func (a Asset) Invested() Amount { return a.BuyPrice.Mul(a.Quantity) }

// ProfitLoss is the unrealized gain (or loss, when negative) of the position.
func (a Asset) ProfitLoss() Amount {
	return CalculateProfitLoss(a.BuyPrice, a.CurrentValue, a.Quantity)
}

// AssetHistory is one recorded value of an asset.
type AssetHistory struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"asset_id"`
	Value     Amount    `json:"value"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// AssetDraft is the payload to create an asset.
//
// CurrentValue is optional: the service defaults it to the buy price, or
// fetches it when the asset is a stock priced by the market API.
type AssetDraft struct {
	Name         string
	Type         AssetType
	BuyPrice     Amount
	Quantity     Amount
	Currency     string
	PurchaseDate Date
	Source       AssetSource
	CurrentValue *Amount
}

func (d AssetDraft) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Set("name", d.Name)
	w.Set("type", d.Type)
	w.Set("buy_price", d.BuyPrice)
	w.Set("quantity", d.Quantity)
	w.Set("currency", d.Currency)
	w.Set("purchase_date", d.PurchaseDate)
	w.Set("source", d.Source)
	w.SetPtr("current_value", d.CurrentValue)
	return w.MarshalJSON()
}

// AssetPatch is the payload to update an asset. Only the mutable fields are
// part of it, nil fields are left untouched by the service.
type AssetPatch struct {
	Name         *string
	CurrentValue *Amount
	Quantity     *Amount
	Source       *AssetSource
}

func (p AssetPatch) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.SetPtr("name", p.Name)
	w.SetPtr("current_value", p.CurrentValue)
	w.SetPtr("quantity", p.Quantity)
	w.SetPtr("source", p.Source)
	return w.MarshalJSON()
}

// Created is the service's acknowledgement of a created record.
type Created struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CurrentValue Amount `json:"current_value"`
	ProfitLoss   Amount `json:"profit_loss"`
}
