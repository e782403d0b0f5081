package manage

import "github.com/etnz/networth"

// DebtForm is the create and edit form of a debt.
type DebtForm struct {
	form
}

// DebtFields are the inputs of the debt form, in display order.
var DebtFields = []Field{
	FieldName,
	FieldType,
	FieldPrincipal,
	FieldCurrentValue,
	FieldInterestRate,
	FieldCurrency,
	FieldStartDate,
}

// DebtEditFields are the inputs an edit sends to the service.
var DebtEditFields = []Field{FieldName, FieldCurrentValue, FieldInterestRate}

// NewDebtForm returns a closed debt form.
func NewDebtForm() *DebtForm {
	return &DebtForm{form: newForm(DebtFields...)}
}

// OpenCreate opens an empty form. The start date defaults to today.
func (f *DebtForm) OpenCreate() error {
	if err := f.open(Create, ""); err != nil {
		return err
	}
	f.values[FieldType] = string(networth.DebtTypes[0])
	f.values[FieldCurrency] = networth.DefaultCurrency
	f.values[FieldStartDate] = inputDate(f.today())
	return nil
}

// OpenEdit opens the form on d.
func (f *DebtForm) OpenEdit(d networth.Debt) error {
	if err := f.open(Edit, d.ID); err != nil {
		return err
	}
	currency := d.Currency
	if currency == "" {
		currency = networth.DefaultCurrency
	}
	f.values[FieldName] = d.Name
	f.values[FieldType] = string(d.Type)
	f.values[FieldPrincipal] = d.Principal.String()
	f.values[FieldCurrentValue] = d.CurrentValue.String()
	f.values[FieldInterestRate] = d.InterestRate.String()
	f.values[FieldCurrency] = currency
	f.values[FieldStartDate] = inputDate(d.StartDate)
	return nil
}

// Set changes an input.
func (f *DebtForm) Set(field Field, value string) error { return f.set(field, value) }

// interestRate parses the rate input, blank meaning 0.
func (f *DebtForm) interestRate() (networth.Amount, error) {
	rate, err := f.optionalAmount(FieldInterestRate)
	if err != nil || rate == nil {
		return networth.A(0), err
	}
	return *rate, nil
}

// Draft returns the create payload. The current value is optional.
func (f *DebtForm) Draft() (networth.DebtDraft, error) {
	var (
		d   networth.DebtDraft
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
	d.Type = networth.DebtType(typ)
	if d.Principal, err = f.amount(FieldPrincipal); err != nil {
		return d, err
	}
	if d.Currency, err = f.currency(FieldCurrency); err != nil {
		return d, err
	}
	if d.InterestRate, err = f.interestRate(); err != nil {
		return d, err
	}
	if d.StartDate, err = f.date(FieldStartDate); err != nil {
		return d, err
	}
	if d.CurrentValue, err = f.optionalAmount(FieldCurrentValue); err != nil {
		return d, err
	}
	return d, nil
}

// Patch returns the edit payload: name, current value and interest rate.
func (f *DebtForm) Patch() (networth.DebtPatch, error) {
	var p networth.DebtPatch
	if f.state != Open || f.mode != Edit {
		return p, ErrNotOpen
	}
	name, err := f.text(FieldName)
	if err != nil {
		return p, err
	}
	p.Name = &name
	if p.CurrentValue, err = f.optionalAmount(FieldCurrentValue); err != nil {
		return p, err
	}
	rate, err := f.interestRate()
	if err != nil {
		return p, err
	}
	p.InterestRate = &rate
	return p, nil
}
