package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/etnz/networth"
	"github.com/etnz/networth/internal/fakeapi"
	"github.com/google/go-cmp/cmp"
)

// newTestClient starts a fake service and returns a client for it.
func newTestClient(t *testing.T) (*Client, *fakeapi.Server) {
	t.Helper()
	fake := fakeapi.New()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return New(srv.URL + fakeapi.Prefix), fake
}

// serve returns a client for a single handler.
func serve(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api/v1/")
}

func TestNew_BaseURL(t *testing.T) {
	c := New("http://localhost:8080/api/v1/")
	if got := c.BaseURL(); got != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", got, DefaultBaseURL)
	}
	if got := c.URL("/assets"); got != DefaultBaseURL+"/assets" {
		t.Errorf("URL() = %q", got)
	}
	if c.http.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", c.http.Timeout, DefaultTimeout)
	}
}

func TestClient_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error field", http.StatusNotFound, `{"error":"Asset not found"}`, "Asset not found"},
		{"unparsable body", http.StatusInternalServerError, `<html>oops</html>`, "500 Internal Server Error"},
		{"empty body", http.StatusBadGateway, ``, "502 Bad Gateway"},
		{"no error field", http.StatusBadRequest, `{"message":"nope"}`, "400 Bad Request"},
		{"non string error", http.StatusBadRequest, `{"error":42}`, "400 Bad Request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := c.ListAssets(context.Background())
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("ListAssets() error = %v, want an *Error", err)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
		})
	}
}

func TestClient_EmptyBody(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	assets, err := c.ListAssets(context.Background())
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(assets) != 0 {
		t.Errorf("ListAssets() = %v, want empty", assets)
	}
	if err := c.DeleteAsset(context.Background(), "a1"); err != nil {
		t.Errorf("DeleteAsset() error = %v", err)
	}
}

func TestClient_MalformedBody(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_assets":`))
	})
	_, err := c.Summary(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Summary() error = %v, want an *Error", err)
	}
	if !strings.HasPrefix(apiErr.Message, "malformed response") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).Health(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Health() error = %v, want an *Error", err)
	}
	if apiErr.Status != 0 || !strings.HasPrefix(apiErr.Message, "cannot reach the service") {
		t.Errorf("got %d %q", apiErr.Status, apiErr.Message)
	}
}

func TestClient_Timeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(done)

	c := New(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.NetWorth(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("NetWorth() error = %v, want an *Error", err)
	}
}

func TestClient_Headers(t *testing.T) {
	var got http.Header
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"status":"healthy"}`))
	})
	c = New(c.BaseURL(), WithHeader("X-Trace", "abc"))
	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if h["status"] != "healthy" {
		t.Errorf("Health() = %v", h)
	}
	if ct := got.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if v := got.Get("X-Trace"); v != "abc" {
		t.Errorf("X-Trace = %q", v)
	}
}

type countingTransport struct{ calls int }

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return http.DefaultTransport.RoundTrip(req)
}

func TestClient_WithHTTPClient(t *testing.T) {
	c, _ := newTestClient(t)
	rt := &countingTransport{}
	hc := &http.Client{Transport: rt}
	c = New(c.BaseURL(), WithHTTPClient(hc))
	if _, err := c.ListAssets(context.Background()); err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if rt.calls != 1 {
		t.Errorf("transport called %d times, want 1", rt.calls)
	}
	if hc.Transport != rt {
		t.Error("the given http.Client was modified")
	}
}

func TestClient_PathEscape(t *testing.T) {
	var path string
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	})
	if _, err := c.GetAsset(context.Background(), "a/b c"); err != nil {
		t.Fatalf("GetAsset() error = %v", err)
	}
	if want := "/api/v1/assets/a%2Fb%20c"; path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestClient_Assets(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateAsset(ctx, networth.AssetDraft{
		Name:         "Apple",
		Type:         networth.AssetTypeStock,
		BuyPrice:     networth.A(100),
		Quantity:     networth.A(2),
		Currency:     "USD",
		PurchaseDate: networth.NewDate(2024, 1, 15),
		Source:       networth.SourceManual,
		CurrentValue: networth.AmountPtr(networth.A(150)),
	})
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}
	if created.ID == "" || created.Name != "Apple" || !created.ProfitLoss.Equal(networth.A(100)) {
		t.Errorf("CreateAsset() = %+v", created)
	}

	assets, err := c.ListAssets(ctx)
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(assets) != 1 || assets[0].ID != created.ID {
		t.Fatalf("ListAssets() = %+v", assets)
	}

	name := "Apple Inc."
	if err := c.UpdateAsset(ctx, created.ID, networth.AssetPatch{Name: &name}); err != nil {
		t.Fatalf("UpdateAsset() error = %v", err)
	}
	asset, err := c.GetAsset(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAsset() error = %v", err)
	}
	if asset.Name != name || asset.PurchaseDate != networth.NewDate(2024, 1, 15) {
		t.Errorf("GetAsset() = %+v", asset)
	}

	history, err := c.AssetHistory(ctx, created.ID)
	if err != nil {
		t.Fatalf("AssetHistory() error = %v", err)
	}
	if len(history) != 1 || !history[0].Value.Equal(networth.A(150)) {
		t.Errorf("AssetHistory() = %+v", history)
	}

	if err := c.DeleteAsset(ctx, created.ID); err != nil {
		t.Fatalf("DeleteAsset() error = %v", err)
	}
	_, err = c.GetAsset(ctx, created.ID)
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "Asset not found" {
		t.Errorf("GetAsset() after delete error = %v", err)
	}

	var methods []string
	for _, r := range fake.Requests() {
		methods = append(methods, r.Method+" "+r.Path)
	}
	want := []string{
		"POST /assets",
		"GET /assets",
		"PUT /assets/" + created.ID,
		"GET /assets/" + created.ID,
		"GET /assets/" + created.ID + "/history",
		"DELETE /assets/" + created.ID,
		"GET /assets/" + created.ID,
	}
	if diff := cmp.Diff(want, methods); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_CreateAssetRejected(t *testing.T) {
	c, _ := newTestClient(t)
	_, err := c.CreateAsset(context.Background(), networth.AssetDraft{Name: "Nothing", Type: networth.AssetTypeCash})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("CreateAsset() error = %v, want an *Error", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Missing or invalid required fields" {
		t.Errorf("got %d %q", apiErr.Status, apiErr.Message)
	}
}

func TestClient_Debts(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateDebt(ctx, networth.DebtDraft{
		Name:         "Car loan",
		Type:         networth.DebtTypeLoan,
		Principal:    networth.A(20000),
		Currency:     "USD",
		InterestRate: networth.A(4.5),
		StartDate:    networth.NewDate(2023, 3, 1),
	})
	if err != nil {
		t.Fatalf("CreateDebt() error = %v", err)
	}
	if created.ID == "" {
		t.Fatalf("CreateDebt() returned no id")
	}

	if err := c.UpdateDebt(ctx, created.ID, networth.DebtPatch{InterestRate: networth.AmountPtr(networth.A(0))}); err != nil {
		t.Fatalf("UpdateDebt() error = %v", err)
	}
	debts, err := c.ListDebts(ctx)
	if err != nil {
		t.Fatalf("ListDebts() error = %v", err)
	}
	if len(debts) != 1 || !debts[0].InterestRate.IsZero() || !debts[0].CurrentValue.Equal(networth.A(20000)) {
		t.Errorf("ListDebts() = %+v", debts)
	}

	puts := fake.Requested(http.MethodPut)
	if len(puts) != 1 || string(puts[0].Body) != `{"interest_rate":0}` {
		t.Errorf("PUT requests = %+v", puts)
	}

	if err := c.DeleteDebt(ctx, created.ID); err != nil {
		t.Fatalf("DeleteDebt() error = %v", err)
	}
	if got := fake.Debts(); len(got) != 0 {
		t.Errorf("Debts() after delete = %+v", got)
	}
}

func TestClient_Aggregates(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()
	fake.AddAsset(networth.Asset{Name: "Cash", Type: networth.AssetTypeCash, BuyPrice: networth.A(1000), CurrentValue: networth.A(1000), Quantity: networth.A(1)})
	fake.AddAsset(networth.Asset{Name: "Apple", Type: networth.AssetTypeStock, BuyPrice: networth.A(100), CurrentValue: networth.A(150), Quantity: networth.A(2)})
	fake.AddDebt(networth.Debt{Name: "Card", Type: networth.DebtTypeCreditCard, Principal: networth.A(500), CurrentValue: networth.A(300)})

	nw, err := c.NetWorth(ctx)
	if err != nil {
		t.Fatalf("NetWorth() error = %v", err)
	}
	if !nw.TotalAssets.Equal(networth.A(1300)) || !nw.TotalDebts.Equal(networth.A(300)) || !nw.NetWorth.Equal(networth.A(1000)) {
		t.Errorf("NetWorth() = %+v", nw)
	}

	s, err := c.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if !s.TotalProfitLoss.Equal(networth.A(100)) || s.Currency != "USD" {
		t.Errorf("Summary() = %+v", s)
	}
}
