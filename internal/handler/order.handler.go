package handler

import (
	"fooodimp-be/internal/order"
	"fooodimp-be/internal/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req order.SubmitOrderInput
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.WriteJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.OrderSvc.SubmitOrder(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, receipt)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.OrderSvc.GetOrder(r.Context(), chi.URLParam(r, "orderNumber"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, o)
}
