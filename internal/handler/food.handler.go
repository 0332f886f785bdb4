package handler

import (
	"fooodimp-be/internal/apperror"
	"fooodimp-be/internal/catalog"
	"fooodimp-be/internal/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type listFoodResponse struct {
	Items []*catalog.FoodItem `json:"Items"`
}

type submitFoodResponse struct {
	Message string              `json:"message"`
	Item    *catalog.FoodRecord `json:"item"`
}

// ListCategory serves one fixed category; the tag is bound at routing time.
func (h *Handler) ListCategory(category catalog.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.CatalogSvc.ListByCategory(r.Context(), category)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, http.StatusOK, listFoodResponse{Items: items})
	}
}

// GetFoodDetails answers a missing item with 200 and an error body.
func (h *Handler) GetFoodDetails(w http.ResponseWriter, r *http.Request) {
	food, err := h.CatalogSvc.GetFoodDetails(r.Context(), chi.URLParam(r, "foodID"))
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			utils.WriteJSON(w, http.StatusOK, map[string]string{"error": err.Error()})
			return
		}
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, food)
}

func (h *Handler) SubmitFood(w http.ResponseWriter, r *http.Request) {
	var req catalog.SubmitFoodInput
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.WriteJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	food, err := h.CatalogSvc.SubmitFood(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, submitFoodResponse{
		Message: "Food item submitted successfully",
		Item:    food,
	})
}
