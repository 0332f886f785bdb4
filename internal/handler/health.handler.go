package handler

import (
	"fooodimp-be/internal/utils"
	"net/http"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheck always answers 200; failures are reported in the body.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.Health.Check(r.Context()); err != nil {
		utils.WriteJSON(w, http.StatusOK, statusResponse{
			Status:  "error",
			Message: "Failed to connect to DynamoDB table: " + err.Error(),
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Connected to DynamoDB table",
	})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Food Ordering System",
	})
}

func (h *Handler) MetricsSnapshot(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Metrics.Snapshot())
}
