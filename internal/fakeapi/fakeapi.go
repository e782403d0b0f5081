// Package fakeapi is an in-memory finance REST service for tests.
//
// It serves the same routes and payloads as the real service under [Prefix],
// records every request it receives, and can be told to fail a route.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/etnz/networth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Prefix is the path under which the service is mounted.
const Prefix = "/api/v1"

// Request is a recorded request.
type Request struct {
	Method      string
	Path        string // without Prefix
	ContentType string
	Body        []byte
}

type failure struct {
	status int
	body   string
}

// Server is the fake service. Its zero value is not usable, use New.
type Server struct {
	mu       sync.Mutex
	assets   []networth.Asset // most recent first
	debts    []networth.Debt  // most recent first
	history  map[string][]networth.AssetHistory
	requests []Request
	failures map[string]failure // by "METHOD /path"
	now      func() time.Time
	router   chi.Router
}

// New returns an empty service.
func New() *Server {
	s := &Server{
		history:  make(map[string][]networth.AssetHistory),
		failures: make(map[string]failure),
		now:      time.Now,
	}
	r := chi.NewRouter()
	r.Use(s.record, s.fail)
	r.Route(Prefix, func(r chi.Router) {
		r.Get("/health", s.health)
		r.Get("/networth", s.netWorth)
		r.Get("/summary", s.summary)

		r.Get("/assets", s.listAssets)
		r.Post("/assets", s.createAsset)
		r.Get("/assets/{id}", s.getAsset)
		r.Put("/assets/{id}", s.updateAsset)
		r.Delete("/assets/{id}", s.deleteAsset)
		r.Get("/assets/{id}/history", s.assetHistory)

		r.Get("/debts", s.listDebts)
		r.Post("/debts", s.createDebt)
		r.Get("/debts/{id}", s.getDebt)
		r.Put("/debts/{id}", s.updateDebt)
		r.Delete("/debts/{id}", s.deleteDebt)

		r.Get("/export/{kind}/{format}", s.export)
		r.Post("/import/{kind}/{format}", s.importRecords)
	})
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

// Fail makes every "method path" request answer status with body. An empty
// body sends an empty response.
func (s *Server) Fail(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, body: body}
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Requested returns the recorded requests matching method.
func (s *Server) Requested(method string) []Request {
	var res []Request
	for _, r := range s.Requests() {
		if r.Method == method {
			res = append(res, r)
		}
	}
	return res
}

// AddAsset stores a as the most recent asset and returns it. An id is
// assigned when a has none.
func (s *Server) AddAsset(a networth.Asset) networth.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Currency == "" {
		a.Currency = networth.DefaultCurrency
	}
	s.assets = append([]networth.Asset{a}, s.assets...)
	return a
}

// AddDebt stores d as the most recent debt and returns it.
func (s *Server) AddDebt(d networth.Debt) networth.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Currency == "" {
		d.Currency = networth.DefaultCurrency
	}
	s.debts = append([]networth.Debt{d}, s.debts...)
	return d
}

// Assets returns the stored assets, most recent first.
func (s *Server) Assets() []networth.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]networth.Asset(nil), s.assets...)
}

// Debts returns the stored debts, most recent first.
func (s *Server) Debts() []networth.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]networth.Debt(nil), s.debts...)
}

// record is a middleware that keeps a copy of every request.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        strings.TrimPrefix(r.URL.Path, Prefix),
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// fail is a middleware that answers the configured failures.
func (s *Server) fail(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f, ok := s.failures[r.Method+" "+strings.TrimPrefix(r.URL.Path, Prefix)]
		s.mu.Unlock()
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(f.status)
		io.WriteString(w, f.body)
	})
}

func respondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// totals computes the aggregates. Callers hold the lock.
func (s *Server) totals() (assets, debts, profitLoss networth.Amount) {
	for _, a := range s.assets {
		assets = assets.Add(a.TotalValue())
		profitLoss = profitLoss.Add(a.ProfitLoss())
	}
	for _, d := range s.debts {
		debts = debts.Add(d.CurrentValue)
	}
	return
}

func (s *Server) netWorth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	assets, debts, _ := s.totals()
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, networth.NetWorth{
		TotalAssets:  assets,
		TotalDebts:   debts,
		NetWorth:     assets.Sub(debts),
		Currency:     networth.DefaultCurrency,
		CalculatedAt: s.now(),
	})
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	assets, debts, pl := s.totals()
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, networth.Summary{
		Date:            s.now(),
		TotalAssets:     assets,
		TotalDebts:      debts,
		NetWorth:        assets.Sub(debts),
		TotalProfitLoss: pl,
		Currency:        networth.DefaultCurrency,
	})
}
