package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/sheetquote/internal/store"
)

func (s *server) handleCustomersList(w http.ResponseWriter, r *http.Request) {
	customers, err := s.store.ListCustomers(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "customers")
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (s *server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var patch store.CustomerPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer body: "+err.Error())
		return
	}
	if patch.ColumnBreak != nil {
		v := strings.ToUpper(strings.TrimSpace(*patch.ColumnBreak))
		patch.ColumnBreak = &v
	}

	c, err := s.store.UpdateCustomer(r.Context(), id, patch)
	if err != nil {
		writeStoreError(w, r, err, "customer")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *server) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCustomer(r.Context(), strings.TrimSpace(chi.URLParam(r, "id"))); err != nil {
		writeStoreError(w, r, err, "customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleItemsList(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListItems(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *server) handleItemUpdate(w http.ResponseWriter, r *http.Request) {
	sku := strings.TrimSpace(chi.URLParam(r, "sku"))

	var patch store.ItemPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid item body: "+err.Error())
		return
	}
	for field, v := range map[string]*float64{
		"gauge":           patch.Gauge,
		"width":           patch.Width,
		"length":          patch.Length,
		"weight_per_unit": patch.WeightPerUnit,
		"avg_cost":        patch.AvgCost,
	} {
		if v != nil && *v < 0 {
			writeError(w, http.StatusBadRequest, field+" must be 0 or greater")
			return
		}
	}

	it, err := s.store.UpdateItem(r.Context(), sku, patch)
	if err != nil {
		writeStoreError(w, r, err, "item")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *server) handleItemDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteItem(r.Context(), strings.TrimSpace(chi.URLParam(r, "sku"))); err != nil {
		writeStoreError(w, r, err, "item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.materials.Custom())
}

func (s *server) handleMaterialDetail(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.materials.IsCustom(name) {
		writeError(w, http.StatusNotFound, "material not found")
		return
	}
	writeJSON(w, http.StatusOK, s.materials.ConstraintsFor(name))
}
