package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/networth"
	"github.com/etnz/networth/api"
	"github.com/etnz/networth/internal/fakeapi"
	"google.golang.org/genai"
)

func newClient(t *testing.T) (*api.Client, *fakeapi.Server) {
	t.Helper()
	fake := fakeapi.New()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return api.New(srv.URL + fakeapi.Prefix), fake
}

func call(t *testing.T, lib Library, name string, args map[string]any) map[string]any {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "call-1", Name: name, Args: args})
	if resp.ID != "call-1" || resp.Name != name {
		t.Fatalf("response = %s/%s, want call-1/%s", resp.ID, resp.Name, name)
	}
	return resp.Response
}

func TestAnalyst_Library(t *testing.T) {
	c, fake := newClient(t)
	apple := fake.AddAsset(networth.Asset{
		Name:         "Apple",
		Type:         networth.AssetTypeStock,
		BuyPrice:     networth.A(100),
		CurrentValue: networth.A(150),
		Quantity:     networth.A(2),
		PurchaseDate: networth.NewDate(2024, 1, 15),
		Source:       networth.SourceManual,
	})
	fake.AddDebt(networth.Debt{
		Name:         "Mortgage",
		Type:         networth.DebtTypeMortgage,
		Principal:    networth.A(200000),
		CurrentValue: networth.A(180000),
		InterestRate: networth.A(3.5),
		StartDate:    networth.NewDate(2020, 6, 1),
	})

	analyst := NewAnalyst(DefaultModel, c)
	if analyst.ModelName != DefaultModel {
		t.Errorf("ModelName = %q", analyst.ModelName)
	}
	decls := analyst.Config.Tools[0].FunctionDeclarations
	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	if got := strings.Join(names, ","); got != "Summary,Assets,Debts,History" {
		t.Errorf("declarations = %s", got)
	}

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"Summary", nil, "## Summary"},
		{"Assets", nil, "Apple"},
		{"Debts", nil, "Mortgage"},
		{"History", map[string]any{"asset_id": apple.ID}, "History for Apple"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, analyst.Library, tt.name, tt.args)
			out, ok := resp["output"].(string)
			if !ok {
				t.Fatalf("response = %v, want an output", resp)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestAnalyst_Errors(t *testing.T) {
	c, fake := newClient(t)
	fake.Fail(http.MethodGet, "/summary", http.StatusInternalServerError, `{"error":"database is down"}`)
	analyst := NewAnalyst(DefaultModel, c)

	tests := []struct {
		name string
		fn   string
		args map[string]any
		want string
	}{
		{"service error", "Summary", nil, "could not load summary: database is down"},
		{"missing argument", "History", nil, `argument "asset_id" is required`},
		{"wrong type", "History", map[string]any{"asset_id": 12.0}, `argument "asset_id" is not a string as expected but float64`},
		{"unknown asset", "History", map[string]any{"asset_id": "nope"}, `could not load asset "nope": Asset not found`},
		{"unknown function", "Transactions", nil, "unknown function Transactions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, analyst.Library, tt.fn, tt.args)
			if got := resp["error"]; got != tt.want {
				t.Errorf("error = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestExpert_CallRejectsMissingQuestion(t *testing.T) {
	e := NewAdvisor(DefaultModel)
	resp := e.Call(context.Background(), "id", map[string]any{})
	if got := resp.Response["error"]; got != `argument "question" is required` {
		t.Errorf("error = %v", got)
	}
}

func TestNew_Facilitator(t *testing.T) {
	c, _ := newClient(t)
	analyst := NewAnalyst("m", c)
	advisor := NewAdvisor("m")
	a := New(&strings.Builder{}, strings.NewReader(""), "m", analyst, advisor)

	if a.Facilitator.ModelName != "m" {
		t.Errorf("facilitator model = %q", a.Facilitator.ModelName)
	}
	decls := a.Facilitator.Config.Tools[0].FunctionDeclarations
	if len(decls) != 2 || decls[0].Name != "Analyst" || decls[1].Name != "Advisor" {
		t.Errorf("facilitator declarations = %v", decls)
	}
	for _, d := range decls {
		if d.Parameters.Required[0] != "question" {
			t.Errorf("%s: required = %v", d.Name, d.Parameters.Required)
		}
	}
}

func TestAgent_Next(t *testing.T) {
	var w strings.Builder
	a := New(&w, strings.NewReader("  how much?  \nlast"), "m")
	prompts := []string{" first "}

	var got []string
	for {
		input, err := a.next(&prompts)
		if err != nil {
			break
		}
		got = append(got, input)
	}
	if want := []string{"first", "how much?", "last"}; strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("inputs = %q, want %q", got, want)
	}
	if n := strings.Count(w.String(), prompt); n != 4 {
		t.Errorf("prompt printed %d times, want 4:\n%s", n, w.String())
	}
}

func TestText(t *testing.T) {
	c := &genai.Content{Parts: []*genai.Part{{Text: "Net worth "}, {Text: "is $10."}}}
	if got := Text(c); got != "Net worth is $10." {
		t.Errorf("Text() = %q", got)
	}
}
