package fakeapi

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/etnz/networth"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var (
	assetHeader = []string{"ID", "Type", "Name", "Buy Price", "Current Value", "Currency", "Quantity", "Purchase Date", "Source", "Created At", "Updated At"}
	debtHeader  = []string{"ID", "Type", "Name", "Principal", "Current Value", "Currency", "Interest Rate", "Start Date", "Created At", "Updated At"}
)

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	kind, format := chi.URLParam(r, "kind"), chi.URLParam(r, "format")
	if kind == string(networth.KindAll) && format != string(networth.FormatJSON) {
		respondWithError(w, http.StatusNotFound, "Unsupported export")
		return
	}
	if kind != string(networth.KindAssets) && kind != string(networth.KindDebts) && kind != string(networth.KindAll) {
		respondWithError(w, http.StatusNotFound, "Unsupported export")
		return
	}
	prefix := kind
	if kind == string(networth.KindAll) {
		prefix = "portfolio"
	}
	now := s.now()
	assets, debts := s.Assets(), s.Debts()

	switch format {
	case string(networth.FormatJSON):
		var payload any
		switch networth.Kind(kind) {
		case networth.KindAssets:
			payload = assets
		case networth.KindDebts:
			payload = debts
		default:
			payload = map[string]any{
				"assets":      assets,
				"debts":       debts,
				"exported_at": now,
				"version":     "1.0",
			}
		}
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_%s.json", prefix, now.Format(networth.DateFormat)))
		respondWithJSON(w, http.StatusOK, payload)

	case string(networth.FormatCSV):
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_%s.csv", prefix, now.Format(networth.DateFormat)))
		cw := csv.NewWriter(w)
		defer cw.Flush()
		if kind == string(networth.KindAssets) {
			cw.Write(assetHeader)
			for _, a := range assets {
				cw.Write([]string{
					a.ID, string(a.Type), a.Name,
					a.BuyPrice.StringFixed(2), a.CurrentValue.StringFixed(2),
					a.Currency, a.Quantity.StringFixed(4), a.PurchaseDate.String(), string(a.Source),
					a.CreatedAt.Format(time.RFC3339), a.UpdatedAt.Format(time.RFC3339),
				})
			}
			return
		}
		cw.Write(debtHeader)
		for _, d := range debts {
			cw.Write([]string{
				d.ID, string(d.Type), d.Name,
				d.Principal.StringFixed(2), d.CurrentValue.StringFixed(2),
				d.Currency, d.InterestRate.StringFixed(2), d.StartDate.String(),
				d.CreatedAt.Format(time.RFC3339), d.UpdatedAt.Format(time.RFC3339),
			})
		}

	default:
		respondWithError(w, http.StatusNotFound, "Unsupported export")
	}
}

func (s *Server) importRecords(w http.ResponseWriter, r *http.Request) {
	kind, format := networth.Kind(chi.URLParam(r, "kind")), networth.FileFormat(chi.URLParam(r, "format"))
	var (
		assets []networth.Asset
		debts  []networth.Debt
		res    networth.ImportResult
	)
	res.Errors = []string{}

	switch format {
	case networth.FormatJSON:
		var err error
		switch kind {
		case networth.KindAssets:
			err = json.NewDecoder(r.Body).Decode(&assets)
		case networth.KindDebts:
			err = json.NewDecoder(r.Body).Decode(&debts)
		default:
			respondWithError(w, http.StatusNotFound, "Unsupported import")
			return
		}
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON format")
			return
		}
		res.Total = len(assets) + len(debts)

	case networth.FormatCSV:
		records, err := csv.NewReader(r.Body).ReadAll()
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid CSV format")
			return
		}
		if len(records) < 2 {
			respondWithError(w, http.StatusBadRequest, "CSV file is empty")
			return
		}
		res.Total = len(records) - 1
		for i, record := range records[1:] {
			var err error
			switch kind {
			case networth.KindAssets:
				var a networth.Asset
				if a, err = assetFromRecord(record); err == nil {
					assets = append(assets, a)
				}
			case networth.KindDebts:
				var d networth.Debt
				if d, err = debtFromRecord(record); err == nil {
					debts = append(debts, d)
				}
			default:
				respondWithError(w, http.StatusNotFound, "Unsupported import")
				return
			}
			if err != nil {
				res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", i+2, err))
			}
		}

	default:
		respondWithError(w, http.StatusNotFound, "Unsupported import")
		return
	}

	for _, a := range assets {
		s.mu.Lock()
		exists := a.ID != "" && s.findAsset(a.ID) >= 0
		s.mu.Unlock()
		if exists {
			res.Skipped++
			continue
		}
		s.AddAsset(a)
		res.Imported++
	}
	for _, d := range debts {
		s.mu.Lock()
		exists := d.ID != "" && s.findDebt(d.ID) >= 0
		s.mu.Unlock()
		if exists {
			res.Skipped++
			continue
		}
		s.AddDebt(d)
		res.Imported++
	}
	respondWithJSON(w, http.StatusOK, res)
}

func assetFromRecord(record []string) (networth.Asset, error) {
	var a networth.Asset
	if len(record) < 9 {
		return a, fmt.Errorf("insufficient columns (need at least 9)")
	}
	var err error
	a.ID, a.Type, a.Name = record[0], networth.AssetType(record[1]), record[2]
	if a.BuyPrice, err = networth.ParseAmount(record[3]); err != nil {
		return a, fmt.Errorf("invalid buy price '%s'", record[3])
	}
	if a.CurrentValue, err = networth.ParseAmount(record[4]); err != nil {
		return a, fmt.Errorf("invalid current value '%s'", record[4])
	}
	a.Currency = record[5]
	if a.Quantity, err = networth.ParseAmount(record[6]); err != nil {
		return a, fmt.Errorf("invalid quantity '%s'", record[6])
	}
	if a.PurchaseDate, err = networth.ParseDate(record[7]); err != nil {
		return a, fmt.Errorf("invalid purchase date '%s'", record[7])
	}
	a.Source = networth.AssetSource(record[8])
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return a, nil
}

func debtFromRecord(record []string) (networth.Debt, error) {
	var d networth.Debt
	if len(record) < 8 {
		return d, fmt.Errorf("insufficient columns (need at least 8)")
	}
	var err error
	d.ID, d.Type, d.Name = record[0], networth.DebtType(record[1]), record[2]
	if d.Principal, err = networth.ParseAmount(record[3]); err != nil {
		return d, fmt.Errorf("invalid principal '%s'", record[3])
	}
	if d.CurrentValue, err = networth.ParseAmount(record[4]); err != nil {
		return d, fmt.Errorf("invalid current value '%s'", record[4])
	}
	d.Currency = record[5]
	if d.InterestRate, err = networth.ParseAmount(record[6]); err != nil {
		return d, fmt.Errorf("invalid interest rate '%s'", record[6])
	}
	if d.StartDate, err = networth.ParseDate(record[7]); err != nil {
		return d, fmt.Errorf("invalid start date '%s'", record[7])
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return d, nil
}
