package fakeapi

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/etnz/networth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) listAssets(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.Assets())
}

func (s *Server) findAsset(id string) int {
	return slices.IndexFunc(s.assets, func(a networth.Asset) bool { return a.ID == id })
}

func (s *Server) getAsset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findAsset(chi.URLParam(r, "id"))
	if i < 0 {
		respondWithError(w, http.StatusNotFound, "Asset not found")
		return
	}
	respondWithJSON(w, http.StatusOK, s.assets[i])
}

func (s *Server) createAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type         networth.AssetType   `json:"type"`
		Name         string               `json:"name"`
		BuyPrice     networth.Amount      `json:"buy_price"`
		CurrentValue *networth.Amount     `json:"current_value"`
		Currency     string               `json:"currency"`
		Quantity     networth.Amount      `json:"quantity"`
		PurchaseDate string               `json:"purchase_date"`
		Source       networth.AssetSource `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == "" || req.Type == "" || !req.BuyPrice.GreaterThan(networth.A(0)) || !req.Quantity.GreaterThan(networth.A(0)) {
		respondWithError(w, http.StatusBadRequest, "Missing or invalid required fields")
		return
	}
	purchaseDate, err := networth.ParseDate(req.PurchaseDate)
	if err != nil || purchaseDate.String() != req.PurchaseDate {
		respondWithError(w, http.StatusBadRequest, "Invalid purchase_date format (use YYYY-MM-DD)")
		return
	}
	currentValue := req.BuyPrice
	if req.CurrentValue != nil {
		currentValue = *req.CurrentValue
	}
	now := s.now()
	asset := s.AddAsset(networth.Asset{
		ID:           uuid.New().String(),
		Type:         req.Type,
		Name:         req.Name,
		BuyPrice:     req.BuyPrice,
		CurrentValue: currentValue,
		Currency:     req.Currency,
		Quantity:     req.Quantity,
		PurchaseDate: purchaseDate,
		Source:       req.Source,
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	s.mu.Lock()
	s.history[asset.ID] = append(s.history[asset.ID], networth.AssetHistory{
		ID:        uuid.New().String(),
		AssetID:   asset.ID,
		Value:     asset.CurrentValue,
		Date:      networth.NewDate(now.Date()),
		CreatedAt: now,
	})
	s.mu.Unlock()

	respondWithJSON(w, http.StatusCreated, networth.Created{
		ID:           asset.ID,
		Name:         asset.Name,
		CurrentValue: asset.CurrentValue,
		ProfitLoss:   asset.ProfitLoss(),
	})
}

func (s *Server) updateAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string               `json:"name"`
		CurrentValue *networth.Amount      `json:"current_value"`
		Quantity     *networth.Amount      `json:"quantity"`
		Source       *networth.AssetSource `json:"source"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == nil && req.CurrentValue == nil && req.Quantity == nil && req.Source == nil {
		respondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findAsset(chi.URLParam(r, "id"))
	if i < 0 {
		respondWithError(w, http.StatusNotFound, "Asset not found")
		return
	}
	a := &s.assets[i]
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.CurrentValue != nil {
		a.CurrentValue = *req.CurrentValue
	}
	if req.Quantity != nil {
		a.Quantity = *req.Quantity
	}
	if req.Source != nil {
		a.Source = *req.Source
	}
	a.UpdatedAt = s.now()
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Asset updated successfully"})
}

func (s *Server) deleteAsset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findAsset(chi.URLParam(r, "id"))
	if i < 0 {
		respondWithError(w, http.StatusNotFound, "Asset not found")
		return
	}
	s.assets = slices.Delete(s.assets, i, i+1)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Asset deleted successfully"})
}

func (s *Server) assetHistory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	history := append([]networth.AssetHistory{}, s.history[chi.URLParam(r, "id")]...)
	s.mu.Unlock()
	respondWithJSON(w, http.StatusOK, history)
}

func (s *Server) listDebts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, s.Debts())
}

func (s *Server) findDebt(id string) int {
	return slices.IndexFunc(s.debts, func(d networth.Debt) bool { return d.ID == id })
}

func (s *Server) getDebt(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findDebt(chi.URLParam(r, "id"))
	if i < 0 {
		respondWithError(w, http.StatusNotFound, "Debt not found")
		return
	}
	respondWithJSON(w, http.StatusOK, s.debts[i])
}

func (s *Server) createDebt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type         networth.DebtType `json:"type"`
		Name         string            `json:"name"`
		Principal    networth.Amount   `json:"principal"`
		CurrentValue *networth.Amount  `json:"current_value"`
		Currency     string            `json:"currency"`
		InterestRate networth.Amount   `json:"interest_rate"`
		StartDate    string            `json:"start_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == "" || req.Type == "" || !req.Principal.GreaterThan(networth.A(0)) {
		respondWithError(w, http.StatusBadRequest, "Missing or invalid required fields")
		return
	}
	startDate, err := networth.ParseDate(req.StartDate)
	if err != nil || startDate.String() != req.StartDate {
		respondWithError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)")
		return
	}
	currentValue := req.Principal
	if req.CurrentValue != nil {
		currentValue = *req.CurrentValue
	}
	now := s.now()
	debt := s.AddDebt(networth.Debt{
		ID:           uuid.New().String(),
		Type:         req.Type,
		Name:         req.Name,
		Principal:    req.Principal,
		CurrentValue: currentValue,
		Currency:     req.Currency,
		InterestRate: req.InterestRate,
		StartDate:    startDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	respondWithJSON(w, http.StatusCreated, debt)
}

func (s *Server) updateDebt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         *string          `json:"name"`
		CurrentValue *networth.Amount `json:"current_value"`
		InterestRate *networth.Amount `json:"interest_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Name == nil && req.CurrentValue == nil && req.InterestRate == nil {
		respondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findDebt(chi.URLParam(r, "id"))
	if i < 0 {
		respondWithError(w, http.StatusNotFound, "Debt not found")
		return
	}
	d := &s.debts[i]
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.CurrentValue != nil {
		d.CurrentValue = *req.CurrentValue
	}
	if req.InterestRate != nil {
		d.InterestRate = *req.InterestRate
	}
	d.UpdatedAt = s.now()
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Debt updated successfully"})
}

func (s *Server) deleteDebt(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findDebt(chi.URLParam(r, "id"))
	if i < 0 {
		respondWithError(w, http.StatusNotFound, "Debt not found")
		return
	}
	s.debts = slices.Delete(s.debts, i, i+1)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Debt deleted successfully"})
}
