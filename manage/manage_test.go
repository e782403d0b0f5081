package manage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/etnz/networth"
	"github.com/etnz/networth/api"
	"github.com/etnz/networth/internal/fakeapi"
	"github.com/etnz/networth/view"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recorder) Notify(level view.Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, level.String()+": "+message)
}

// setup returns a manager on a fresh fake service. Deletions are confirmed
// according to confirm, and prompts are recorded in prompts.
func setup(t *testing.T, confirm bool) (*Manager, *fakeapi.Server, *recorder, *[]string) {
	t.Helper()
	fake := fakeapi.New()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	var n recorder
	var prompts []string
	m := NewManager(api.New(srv.URL+fakeapi.Prefix), &n, ConfirmFunc(func(p string) bool {
		prompts = append(prompts, p)
		return confirm
	}))
	m.Asset.today = func() networth.Date { return networth.NewDate(2024, 1, 15) }
	m.Debt.today = func() networth.Date { return networth.NewDate(2024, 2, 1) }
	return m, fake, &n, &prompts
}

func dispatch(t *testing.T, m *Manager, events ...Event) *Mutation {
	t.Helper()
	var mut *Mutation
	for _, ev := range events {
		var err error
		if mut, err = m.Dispatch(context.Background(), ev); err != nil {
			t.Fatalf("Dispatch(%v) error = %v", ev.Kind, err)
		}
	}
	return mut
}

func changes(kind EventKind, values map[Field]string) []Event {
	// Type and source first, as a user would pick them before typing values.
	order := []Field{FieldType, FieldSource, FieldName, FieldBuyPrice, FieldPrincipal, FieldCurrentValue, FieldQuantity, FieldInterestRate, FieldCurrency, FieldPurchaseDate, FieldStartDate}
	var events []Event
	for _, f := range order {
		if v, ok := values[f]; ok {
			events = append(events, Event{Kind: kind, Field: f, Value: v})
		}
	}
	return events
}

func TestAssetForm_CurrentValueVisibility(t *testing.T) {
	tests := []struct {
		typ, source string
		visible     bool
	}{
		{"stock", "market_api", false},
		{"stock", "manual", true},
		{"cash", "market_api", true},
		{"crypto", "manual", true},
	}
	for _, tt := range tests {
		f := NewAssetForm()
		if err := f.OpenCreate(); err != nil {
			t.Fatalf("OpenCreate() error = %v", err)
		}
		f.Set(FieldType, tt.typ)
		f.Set(FieldSource, tt.source)
		if got := f.CurrentValueVisible(); got != tt.visible {
			t.Errorf("%s/%s: CurrentValueVisible() = %v, want %v", tt.typ, tt.source, got, tt.visible)
		}
		if got := f.CurrentValueRequired(); got != tt.visible {
			t.Errorf("%s/%s: CurrentValueRequired() = %v, want %v", tt.typ, tt.source, got, tt.visible)
		}
	}

	// Switching back shows the field again.
	f := NewAssetForm()
	f.OpenCreate()
	f.Set(FieldType, "stock")
	f.Set(FieldSource, "market_api")
	f.Set(FieldSource, "manual")
	if !f.CurrentValueVisible() {
		t.Error("current value stays hidden after switching the source back to manual")
	}
}

func TestManager_CreateAsset(t *testing.T) {
	m, fake, n, _ := setup(t, true)

	dispatch(t, m, Event{Kind: AddAsset})
	if got := m.Asset.Get(FieldPurchaseDate); got != "2024-01-15" {
		t.Errorf("default purchase date = %q", got)
	}
	events := changes(ChangeAsset, map[Field]string{
		FieldName:         "Apple",
		FieldType:         "stock",
		FieldSource:       "market_api",
		FieldBuyPrice:     "150",
		FieldQuantity:     "10",
		FieldCurrency:     "usd",
		FieldCurrentValue: "999",
	})
	mut := dispatch(t, m, append(events, Event{Kind: SubmitAsset})...)
	if mut == nil || mut.Op != Created || mut.ID == "" {
		t.Fatalf("SubmitAsset mutation = %+v", mut)
	}

	posts := fake.Requested(http.MethodPost)
	if len(posts) != 1 {
		t.Fatalf("%d POST requests, want 1", len(posts))
	}
	want := `{"name":"Apple","type":"stock","buy_price":150,"quantity":10,"currency":"USD","purchase_date":"2024-01-15","source":"market_api"}`
	if got := string(posts[0].Body); got != want {
		t.Errorf("create payload =\n%s\nwant\n%s", got, want)
	}

	if m.Asset.State() != Closed || m.Asset.EditingID() != "" {
		t.Errorf("form after submit: state %v, editing %q", m.Asset.State(), m.Asset.EditingID())
	}
	if got := m.Page().Get(view.SlotAssets); !strings.Contains(got, "Apple") {
		t.Errorf("assets list was not refreshed:\n%s", got)
	}
	if diff := cmp.Diff([]string{"success: Asset created successfully!"}, n.messages); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_EditAsset(t *testing.T) {
	m, fake, _, _ := setup(t, true)
	a := fake.AddAsset(networth.Asset{
		Name:         "Apple",
		Type:         networth.AssetTypeStock,
		BuyPrice:     networth.A(100),
		CurrentValue: networth.A(150),
		Quantity:     networth.A(2),
		PurchaseDate: networth.NewDate(2023, 5, 10),
		Source:       networth.SourceManual,
	})

	dispatch(t, m, Event{Kind: EditAsset, ID: a.ID})
	if m.Asset.Mode() != Edit || m.Asset.EditingID() != a.ID {
		t.Fatalf("form mode %v, editing %q", m.Asset.Mode(), m.Asset.EditingID())
	}
	if got := m.Asset.Get(FieldPurchaseDate); got != "2023-05-10" {
		t.Errorf("purchase date input = %q, want 2023-05-10", got)
	}
	if got := m.Asset.Get(FieldCurrency); got != "USD" {
		t.Errorf("currency input = %q, want USD", got)
	}

	mut := dispatch(t, m,
		Event{Kind: ChangeAsset, Field: FieldName, Value: "Apple Inc."},
		Event{Kind: ChangeAsset, Field: FieldBuyPrice, Value: "1"},
		Event{Kind: SubmitAsset},
	)
	if mut == nil || mut.Op != Updated || mut.ID != a.ID {
		t.Fatalf("SubmitAsset mutation = %+v", mut)
	}

	puts := fake.Requested(http.MethodPut)
	if len(puts) != 1 {
		t.Fatalf("%d PUT requests, want 1", len(puts))
	}
	want := `{"name":"Apple Inc.","current_value":150,"quantity":2,"source":"manual"}`
	if got := string(puts[0].Body); got != want {
		t.Errorf("edit payload =\n%s\nwant\n%s", got, want)
	}
	if m.Asset.State() != Closed || m.Asset.EditingID() != "" {
		t.Errorf("form after submit: state %v, editing %q", m.Asset.State(), m.Asset.EditingID())
	}
	if got := fake.Assets()[0]; got.Name != "Apple Inc." || !got.BuyPrice.Equal(networth.A(100)) {
		t.Errorf("stored asset = %+v", got)
	}
}

func TestOpenEdit_DateInputs(t *testing.T) {
	tests := []struct {
		name string
		date networth.Date
		want string
	}{
		{"stored date", networth.NewDate(2024, 3, 5), "2024-03-05"},
		{"normalized date", networth.NewDate(2024, 2, 30), "2024-03-01"},
		{"missing date", networth.Date{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			af := NewAssetForm()
			if err := af.OpenEdit(networth.Asset{ID: "a1", PurchaseDate: tt.date}); err != nil {
				t.Fatal(err)
			}
			if got := af.Get(FieldPurchaseDate); got != tt.want {
				t.Errorf("purchase date input = %q, want %q", got, tt.want)
			}
			df := NewDebtForm()
			if err := df.OpenEdit(networth.Debt{ID: "d1", StartDate: tt.date}); err != nil {
				t.Fatal(err)
			}
			if got := df.Get(FieldStartDate); got != tt.want {
				t.Errorf("start date input = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestManager_CreateDebt(t *testing.T) {
	m, fake, _, _ := setup(t, true)

	events := changes(ChangeDebt, map[Field]string{
		FieldName:         "Card",
		FieldType:         "credit_card",
		FieldPrincipal:    "500",
		FieldInterestRate: " ",
		FieldCurrentValue: "",
	})
	events = append([]Event{{Kind: AddDebt}}, events...)
	dispatch(t, m, append(events, Event{Kind: SubmitDebt})...)

	posts := fake.Requested(http.MethodPost)
	if len(posts) != 1 {
		t.Fatalf("%d POST requests, want 1", len(posts))
	}
	want := `{"name":"Card","type":"credit_card","principal":500,"currency":"USD","interest_rate":0,"start_date":"2024-02-01"}`
	if got := string(posts[0].Body); got != want {
		t.Errorf("create payload =\n%s\nwant\n%s", got, want)
	}
	if got := m.Page().Get(view.SlotDebts); !strings.Contains(got, "Credit Card") {
		t.Errorf("debts list was not refreshed:\n%s", got)
	}
}

func TestManager_EditDebt(t *testing.T) {
	m, fake, _, _ := setup(t, true)
	d := fake.AddDebt(networth.Debt{
		Name:         "Mortgage",
		Type:         networth.DebtTypeMortgage,
		Principal:    networth.A(200000),
		CurrentValue: networth.A(180000),
		InterestRate: networth.A(3.5),
		StartDate:    networth.NewDate(2020, 1, 1),
	})

	dispatch(t, m,
		Event{Kind: EditDebt, ID: d.ID},
		Event{Kind: ChangeDebt, Field: FieldCurrentValue, Value: "175000"},
		Event{Kind: ChangeDebt, Field: FieldPrincipal, Value: "1"},
		Event{Kind: SubmitDebt},
	)

	puts := fake.Requested(http.MethodPut)
	if len(puts) != 1 {
		t.Fatalf("%d PUT requests, want 1", len(puts))
	}
	want := `{"name":"Mortgage","current_value":175000,"interest_rate":3.5}`
	if got := string(puts[0].Body); got != want {
		t.Errorf("edit payload =\n%s\nwant\n%s", got, want)
	}
}

func TestManager_DeleteWithoutConfirmation(t *testing.T) {
	m, fake, _, prompts := setup(t, false)
	a := fake.AddAsset(networth.Asset{Name: "Apple", Type: networth.AssetTypeStock})
	m.Load(context.Background())
	before := m.Page().Get(view.SlotAssets)

	mut := dispatch(t, m, Event{Kind: DeleteAsset, ID: a.ID, Name: a.Name})
	if mut != nil {
		t.Errorf("cancelled deletion returned %+v", mut)
	}
	if got := fake.Requested(http.MethodDelete); len(got) != 0 {
		t.Errorf("DELETE requests = %+v, want none", got)
	}
	if got := fake.Assets(); len(got) != 1 {
		t.Errorf("assets = %+v, want the asset to remain", got)
	}
	if got := m.Page().Get(view.SlotAssets); got != before {
		t.Errorf("assets list changed:\n%s", got)
	}
	if diff := cmp.Diff([]string{`Are you sure you want to delete "Apple"?`}, *prompts); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_Delete(t *testing.T) {
	m, fake, n, prompts := setup(t, true)
	d := fake.AddDebt(networth.Debt{Name: "Loan", Type: networth.DebtTypeLoan})

	mut := dispatch(t, m, Event{Kind: DeleteDebt, ID: d.ID})
	if mut == nil || mut.Op != Deleted {
		t.Fatalf("DeleteDebt mutation = %+v", mut)
	}
	if diff := cmp.Diff([]string{`Are you sure you want to delete "Loan"?`}, *prompts); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}
	if got := fake.Debts(); len(got) != 0 {
		t.Errorf("debts = %+v, want none", got)
	}
	if got := m.Page().Get(view.SlotDebts); !strings.Contains(got, "No debts found.") {
		t.Errorf("debts list was not refreshed:\n%s", got)
	}
	if diff := cmp.Diff([]string{"success: Debt deleted successfully!"}, n.messages); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_OneSessionPerKind(t *testing.T) {
	m, fake, _, _ := setup(t, true)
	a := fake.AddAsset(networth.Asset{Name: "Apple", Type: networth.AssetTypeStock})

	dispatch(t, m, Event{Kind: AddAsset})
	if _, err := m.Dispatch(context.Background(), Event{Kind: AddAsset}); !errors.Is(err, ErrModalOpen) {
		t.Errorf("second AddAsset error = %v, want ErrModalOpen", err)
	}
	if _, err := m.Dispatch(context.Background(), Event{Kind: EditAsset, ID: a.ID}); !errors.Is(err, ErrModalOpen) {
		t.Errorf("EditAsset on an open form error = %v, want ErrModalOpen", err)
	}
	// The other kind is independent.
	dispatch(t, m, Event{Kind: AddDebt})

	dispatch(t, m, Event{Kind: CancelAsset}, Event{Kind: EditAsset, ID: a.ID})
	if m.Asset.EditingID() != a.ID {
		t.Errorf("EditingID() = %q, want %q", m.Asset.EditingID(), a.ID)
	}
	dispatch(t, m, Event{Kind: CancelAsset})
	if m.Asset.EditingID() != "" {
		t.Errorf("EditingID() after cancel = %q", m.Asset.EditingID())
	}
}

func TestManager_SubmitValidation(t *testing.T) {
	m, fake, n, _ := setup(t, true)
	dispatch(t, m, Event{Kind: AddAsset}, Event{Kind: ChangeAsset, Field: FieldName, Value: "Apple"})

	_, err := m.Dispatch(context.Background(), Event{Kind: SubmitAsset})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != FieldBuyPrice {
		t.Fatalf("SubmitAsset error = %v, want a buy_price ValidationError", err)
	}
	if m.Asset.State() != Open {
		t.Error("form closed after a failed submit")
	}
	if got := fake.Requested(http.MethodPost); len(got) != 0 {
		t.Errorf("POST requests = %+v, want none", got)
	}
	if diff := cmp.Diff([]string{"error: Buy Price: is required"}, n.messages); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		field Field
		value string
	}{
		{FieldBuyPrice, "abc"},
		{FieldBuyPrice, "-1"},
		{FieldPurchaseDate, "15/01/2024"},
		{FieldCurrency, "DOLLARS"},
	}
	for _, tt := range tests {
		f := NewAssetForm()
		f.OpenCreate()
		f.Set(FieldName, "Apple")
		f.Set(FieldBuyPrice, "1")
		f.Set(FieldQuantity, "1")
		f.Set(FieldCurrentValue, "1")
		f.Set(tt.field, tt.value)
		_, err := f.Draft()
		if !errors.As(err, &verr) || verr.Field != tt.field {
			t.Errorf("Draft() with %s=%q error = %v", tt.field, tt.value, err)
		}
	}
}

func TestManager_SubmitServiceError(t *testing.T) {
	m, fake, n, _ := setup(t, true)
	fake.Fail(http.MethodPost, "/debts", http.StatusInternalServerError, `{"error":"database is locked"}`)

	dispatch(t, m, Event{Kind: AddDebt}, Event{Kind: ChangeDebt, Field: FieldName, Value: "Loan"}, Event{Kind: ChangeDebt, Field: FieldPrincipal, Value: "100"})
	if _, err := m.Dispatch(context.Background(), Event{Kind: SubmitDebt}); err == nil {
		t.Fatal("SubmitDebt expected an error")
	}
	if m.Debt.State() != Open {
		t.Error("form closed after a failed submit")
	}
	if diff := cmp.Diff([]string{"error: database is locked"}, n.messages); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_Import(t *testing.T) {
	m, fake, n, _ := setup(t, true)

	_, err := m.Dispatch(context.Background(), Event{Kind: Import, Records: networth.KindAssets, Filename: "assets.xlsx", Body: strings.NewReader("")})
	if err == nil {
		t.Fatal("import of an .xlsx file expected an error")
	}
	if got := fake.Requested(http.MethodPost); len(got) != 0 {
		t.Errorf("POST requests = %+v, want none", got)
	}

	csv := "ID,Type,Name,Buy Price,Current Value,Currency,Quantity,Purchase Date,Source\n" +
		",cash,Savings,1000,1000,USD,1,2024-02-01,manual\n" +
		",cash,Broken,1000,1000,USD,1,not-a-date,manual\n"
	mut := dispatch(t, m, Event{Kind: Import, Records: networth.KindAssets, Filename: "Assets.CSV", Body: strings.NewReader(csv)})
	if mut == nil || mut.Result == nil || mut.Result.Imported != 1 || mut.Level != view.LevelWarning {
		t.Fatalf("Import mutation = %+v", mut)
	}

	posts := fake.Requested(http.MethodPost)
	if len(posts) != 1 || posts[0].Path != "/import/assets/csv" || posts[0].ContentType != "text/csv" {
		t.Errorf("POST requests = %+v", posts)
	}
	if got := m.Page().Get(view.SlotAssets); !strings.Contains(got, "Savings") {
		t.Errorf("assets list was not refreshed:\n%s", got)
	}
	want := []string{
		`error: please select a JSON or CSV file, got "assets.xlsx"`,
		"warning: Imported 1 assets, 1 errors",
	}
	if diff := cmp.Diff(want, n.messages); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_Export(t *testing.T) {
	m, fake, _, _ := setup(t, true)
	fake.AddAsset(networth.Asset{ID: "a1", Name: "Apple", Type: networth.AssetTypeStock})

	var out strings.Builder
	mut := dispatch(t, m, Event{Kind: Export, Records: networth.KindAssets, Format: networth.FormatCSV, Out: &out})
	if mut == nil || mut.Op != Exported {
		t.Fatalf("Export returned %+v, want an export", mut)
	}
	if !strings.HasPrefix(mut.Filename, "assets_") || !strings.HasSuffix(mut.Filename, ".csv") {
		t.Errorf("Filename = %q", mut.Filename)
	}
	if !strings.Contains(out.String(), "a1,stock,Apple") {
		t.Errorf("export = %q", out.String())
	}
	if got := fake.Requested(http.MethodGet); len(got) != 1 {
		t.Errorf("requests = %+v, want only the export", got)
	}
}

func TestManager_Reset(t *testing.T) {
	m, _, _, _ := setup(t, true)
	m.Load(context.Background())
	dispatch(t, m, Event{Kind: AddAsset}, Event{Kind: AddDebt})
	m.Reset()
	if m.Asset.State() != Closed || m.Debt.State() != Closed {
		t.Error("forms are still open after Reset()")
	}
	if got := strings.TrimSpace(m.Page().Markdown()); got != "" {
		t.Errorf("page after Reset() = %q", got)
	}
}
