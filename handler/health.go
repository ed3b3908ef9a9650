package handler

import "net/http"

func (h *Handler) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status": "available",
		"system_info": map[string]string{
			"environment": h.config.Server.Env,
			"version":     "1.0.0",
		},
	}
	err := h.encodeJSON(w, http.StatusOK, health, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
