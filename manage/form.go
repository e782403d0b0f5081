// Package manage holds the create and edit forms of assets and debts and
// the page controller that submits them.
//
// Forms never call the service. They turn string inputs into payloads; the
// [Manager] sends them and refreshes the matching list afterwards.
package manage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/networth"
)

// State is the state of a form.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Mode tells what an open form does on submit.
type Mode int

const (
	Create Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "edit"
	}
	return "create"
}

// Field is the name of a form input. Names match the payload keys.
type Field string

const (
	FieldName         Field = "name"
	FieldType         Field = "type"
	FieldBuyPrice     Field = "buy_price"
	FieldCurrentValue Field = "current_value"
	FieldQuantity     Field = "quantity"
	FieldCurrency     Field = "currency"
	FieldPurchaseDate Field = "purchase_date"
	FieldSource       Field = "source"
	FieldPrincipal    Field = "principal"
	FieldInterestRate Field = "interest_rate"
	FieldStartDate    Field = "start_date"
)

// Label returns the human name of the field, "Buy Price" for buy_price.
func (f Field) Label() string { return networth.TypeLabel(f) }

var (
	// ErrModalOpen is returned when a form is opened while another session of
	// the same kind is open.
	ErrModalOpen = errors.New("a form of this kind is already open")
	// ErrNotOpen is returned when a closed form is changed or submitted.
	ErrNotOpen = errors.New("the form is not open")
)

// ValidationError reports an invalid form input.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field.Label(), e.Reason) }

// form is the state shared by both kinds of forms.
type form struct {
	state     State
	mode      Mode
	editingID string
	fields    []Field
	values    map[Field]string
	today     func() networth.Date
}

func newForm(fields ...Field) form {
	return form{fields: fields, values: make(map[Field]string), today: networth.Today}
}

func (f *form) State() State { return f.state }
func (f *form) Mode() Mode   { return f.mode }

// EditingID is the id of the record being edited, "" unless the form is open
// in edit mode.
func (f *form) EditingID() string { return f.editingID }

// Get returns the current input of field.
func (f *form) Get(field Field) string { return f.values[field] }

// Close closes the form and ends any edit session. Closing a closed form is
// a no-op.
func (f *form) Close() {
	f.state = Closed
	f.mode = Create
	f.editingID = ""
}

func (f *form) open(mode Mode, id string) error {
	if f.state == Open {
		return ErrModalOpen
	}
	f.state, f.mode, f.editingID = Open, mode, id
	clear(f.values)
	return nil
}

func (f *form) set(field Field, value string) error {
	if f.state != Open {
		return ErrNotOpen
	}
	for _, known := range f.fields {
		if known == field {
			f.values[field] = value
			return nil
		}
	}
	return &ValidationError{Field: field, Reason: "unknown field"}
}

func (f *form) text(field Field) (string, error) {
	v := strings.TrimSpace(f.values[field])
	if v == "" {
		return "", &ValidationError{Field: field, Reason: "is required"}
	}
	return v, nil
}

// amount parses a required decimal input.
func (f *form) amount(field Field) (networth.Amount, error) {
	v, err := f.text(field)
	if err != nil {
		return networth.Amount{}, err
	}
	a, err := networth.ParseAmount(v)
	if err != nil {
		return networth.Amount{}, &ValidationError{Field: field, Reason: "must be a number"}
	}
	if a.IsNegative() {
		return networth.Amount{}, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return a, nil
}

// optionalAmount parses a decimal input that may be left blank. A blank input
// gives nil, never zero.
func (f *form) optionalAmount(field Field) (*networth.Amount, error) {
	if strings.TrimSpace(f.values[field]) == "" {
		return nil, nil
	}
	a, err := f.amount(field)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (f *form) date(field Field) (networth.Date, error) {
	v, err := f.text(field)
	if err != nil {
		return networth.Date{}, err
	}
	d, err := networth.ParseDate(v)
	if err != nil || d.String() != v {
		return networth.Date{}, &ValidationError{Field: field, Reason: fmt.Sprintf("must be a date formatted as %s", networth.DateFormat)}
	}
	return d, nil
}

// inputDate is what a date field shows for d, blank when d is unknown.
func inputDate(d networth.Date) string {
	s, err := networth.FormatDateForInput(d.String())
	if err != nil {
		return ""
	}
	return s
}

func (f *form) currency(field Field) (string, error) {
	v := strings.ToUpper(strings.TrimSpace(f.values[field]))
	if v == "" {
		return networth.DefaultCurrency, nil
	}
	if len(v) != 3 || strings.IndexFunc(v, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a 3 letters currency code", v)}
	}
	return v, nil
}

func (f *form) optionalText(field Field) *string {
	v := strings.TrimSpace(f.values[field])
	if v == "" {
		return nil
	}
	return &v
}
