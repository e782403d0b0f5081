package networth

import "time"

// DebtType is the kind of a tracked liability.
type DebtType string

const (
	DebtTypeCreditCard DebtType = "credit_card"
	DebtTypeLoan       DebtType = "loan"
	DebtTypeMortgage   DebtType = "mortgage"
	DebtTypeOther      DebtType = "other"
)

// DebtTypes lists the debt types offered when creating a debt.
var DebtTypes = []DebtType{DebtTypeCreditCard, DebtTypeLoan, DebtTypeMortgage, DebtTypeOther}

// Debt is a liability as returned by the service.
type Debt struct {
	ID           string    `json:"id"`
	Type         DebtType  `json:"type"`
	Name         string    `json:"name"`
	Principal    Amount    `json:"principal"`
	CurrentValue Amount    `json:"current_value"`
	Currency     string    `json:"currency"`
	InterestRate Amount    `json:"interest_rate"` // in percent
	StartDate    Date      `json:"start_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DebtDraft is the payload to create a debt.
type DebtDraft struct {
	Name         string
	Type         DebtType
	Principal    Amount
	Currency     string
	InterestRate Amount
	StartDate    Date
	CurrentValue *Amount
}

func (d DebtDraft) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Set("name", d.Name)
	w.Set("type", d.Type)
	w.Set("principal", d.Principal)
	w.Set("currency", d.Currency)
	w.Set("interest_rate", d.InterestRate)
	w.Set("start_date", d.StartDate)
	w.SetPtr("current_value", d.CurrentValue)
	return w.MarshalJSON()
}

// DebtPatch is the payload to update a debt, restricted to its mutable fields.
type DebtPatch struct {
	Name         *string
	CurrentValue *Amount
	InterestRate *Amount
}

func (p DebtPatch) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.SetPtr("name", p.Name)
	w.SetPtr("current_value", p.CurrentValue)
	w.SetPtr("interest_rate", p.InterestRate)
	return w.MarshalJSON()
}
