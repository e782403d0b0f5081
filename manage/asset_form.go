package manage

import "github.com/etnz/networth"

// AssetForm is the create and edit form of an asset.
type AssetForm struct {
	form
}

// AssetFields are the inputs of the asset form, in display order.
var AssetFields = []Field{
	FieldName,
	FieldType,
	FieldBuyPrice,
	FieldCurrentValue,
	FieldQuantity,
	FieldCurrency,
	FieldPurchaseDate,
	FieldSource,
}

// AssetEditFields are the inputs an edit sends to the service.
var AssetEditFields = []Field{FieldName, FieldCurrentValue, FieldQuantity, FieldSource}

// NewAssetForm returns a closed asset form.
func NewAssetForm() *AssetForm {
	return &AssetForm{form: newForm(AssetFields...)}
}

// OpenCreate opens an empty form. The purchase date defaults to today.
func (f *AssetForm) OpenCreate() error {
	if err := f.open(Create, ""); err != nil {
		return err
	}
	f.values[FieldType] = string(networth.AssetTypes[0])
	f.values[FieldCurrency] = networth.DefaultCurrency
	f.values[FieldPurchaseDate] = inputDate(f.today())
	f.values[FieldSource] = string(networth.SourceManual)
	return nil
}

// OpenEdit opens the form on a. Every input is filled from a.
func (f *AssetForm) OpenEdit(a networth.Asset) error {
	if err := f.open(Edit, a.ID); err != nil {
		return err
	}
	currency := a.Currency
	if currency == "" {
		currency = networth.DefaultCurrency
	}
	source := a.Source
	if source == "" {
		source = networth.SourceManual
	}
	f.values[FieldName] = a.Name
	f.values[FieldType] = string(a.Type)
	f.values[FieldBuyPrice] = a.BuyPrice.String()
	f.values[FieldCurrentValue] = a.CurrentValue.String()
	f.values[FieldQuantity] = a.Quantity.String()
	f.values[FieldCurrency] = currency
	f.values[FieldPurchaseDate] = inputDate(a.PurchaseDate)
	f.values[FieldSource] = string(source)
	return nil
}

// Set changes an input.
func (f *AssetForm) Set(field Field, value string) error { return f.set(field, value) }

// CurrentValueVisible reports whether the current value input is shown. It
// is hidden for stocks priced by the market data provider.
func (f *AssetForm) CurrentValueVisible() bool {
	return !(networth.AssetType(f.values[FieldType]) == networth.AssetTypeStock &&
		networth.AssetSource(f.values[FieldSource]) == networth.SourceMarketAPI)
}

// CurrentValueRequired reports whether the current value input must be
// filled. It is required exactly when it is shown.
func (f *AssetForm) CurrentValueRequired() bool { return f.CurrentValueVisible() }

// currentValue returns the current value to send, nil when it is hidden.
func (f *AssetForm) currentValue() (*networth.Amount, error) {
	if !f.CurrentValueVisible() {
		return nil, nil
	}
	a, err := f.amount(FieldCurrentValue)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (f *AssetForm) source() (networth.AssetSource, error) {
	s := networth.AssetSource(f.values[FieldSource])
	if s == "" {
		return networth.SourceManual, nil
	}
	for _, known := range networth.AssetSources {
		if s == known {
			return s, nil
		}
	}
	return "", &ValidationError{Field: FieldSource, Reason: "must be manual or market_api"}
}

// Draft returns the create payload.
func (f *AssetForm) Draft() (networth.AssetDraft, error) {
	var (
		d   networth.AssetDraft
		err error
	)
	if f.state != Open {
		return d, ErrNotOpen
	}
	if d.Name, err = f.text(FieldName); err != nil {
		return d, err
	}
	typ, err := f.text(FieldType)
	if err != nil {
		return d, err
	}
	d.Type = networth.AssetType(typ)
	if d.BuyPrice, err = f.amount(FieldBuyPrice); err != nil {
		return d, err
	}
	if d.Quantity, err = f.amount(FieldQuantity); err != nil {
		return d, err
	}
	if d.Currency, err = f.currency(FieldCurrency); err != nil {
		return d, err
	}
	if d.PurchaseDate, err = f.date(FieldPurchaseDate); err != nil {
		return d, err
	}
	if d.Source, err = f.source(); err != nil {
		return d, err
	}
	if d.CurrentValue, err = f.currentValue(); err != nil {
		return d, err
	}
	return d, nil
}

// Patch returns the edit payload. It only carries the inputs an edit may
// change: name, current value, quantity and source.
func (f *AssetForm) Patch() (networth.AssetPatch, error) {
	var p networth.AssetPatch
	if f.state != Open || f.mode != Edit {
		return p, ErrNotOpen
	}
	name, err := f.text(FieldName)
	if err != nil {
		return p, err
	}
	p.Name = &name
	if p.CurrentValue, err = f.currentValue(); err != nil {
		return p, err
	}
	quantity, err := f.amount(FieldQuantity)
	if err != nil {
		return p, err
	}
	p.Quantity = &quantity
	source, err := f.source()
	if err != nil {
		return p, err
	}
	p.Source = &source
	return p, nil
}
