package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"

	"shopflow-payment-api/models"
	"shopflow-payment-api/services/auth"
	"shopflow-payment-api/utils"
)

type AuthHandler struct {
	jwtService     *auth.JWTService
	internalSecret string
}

func NewAuthHandler(jwtService *auth.JWTService, internalSecret string) *AuthHandler {
	return &AuthHandler{
		jwtService:     jwtService,
		internalSecret: internalSecret,
	}
}

type tokenRequest struct {
	Caller string `json:"caller"`
	Secret string `json:"secret"`
}

// GenerateToken exchanges the internal API secret for a short-lived JWT.
func (h *AuthHandler) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.internalSecret)) != 1 {
		log.Printf("Token request with invalid secret from %s", r.RemoteAddr)
		utils.SendErrorResponse(w, http.StatusUnauthorized, "Invalid secret")
		return
	}

	caller := req.Caller
	if caller == "" {
		caller = "internal"
	}

	token, err := h.jwtService.GenerateToken(caller)
	if err != nil {
		log.Printf("Error generating token for %s: %v", caller, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SendSuccessResponse(w, models.APIResponse{
		Status:  "success",
		Message: "Token generated",
		Data:    map[string]string{"token": token},
	})
}
