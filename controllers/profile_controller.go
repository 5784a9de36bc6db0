package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"kisekae_server/models"
	"kisekae_server/services"
	"kisekae_server/utils"
)

// ProfileController handles requests related to user profiles.
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new instance of ProfileController.
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// CreateProfile handles POST /api/profile.
func (c *ProfileController) CreateProfile(w http.ResponseWriter, r *http.Request) {
	log.Println("profile START(POST)")

	var req models.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Failed to decode request body: %v\n", err)
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if details := utils.ValidateStruct(&req); details != nil {
		log.Printf("Validation error in profile(POST): %+v\n", details)
		utils.WriteValidationError(w, details)
		return
	}

	userID, err := c.ProfileService.CreateProfile(r.Context(), req)
	if err != nil {
		log.Printf("profile FAILED(POST): %v\n", err)
		writeDomainError(w, err)
		return
	}

	log.Printf("profile SUCCESS(POST): userId=%s\n", userID)
	utils.WriteJSON(w, http.StatusCreated, models.SaveProfileResponse{Message: "Profile saved", UserID: userID})
}

// UpdateProfile handles PATCH /api/profile/{userId}. Only the supplied
// fields change; a body with zero fields is a validation error.
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	log.Printf("profile START(PATCH): userId=%s\n", userID)

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if details := utils.ValidateStruct(&req); details != nil {
		log.Printf("Validation error in profile(PATCH): %+v\n", details)
		utils.WriteValidationError(w, details)
		return
	}

	if err := c.ProfileService.UpdateProfile(r.Context(), userID, req); err != nil {
		log.Printf("profile FAILED(PATCH): userId=%s: %v\n", userID, err)
		writeDomainError(w, err)
		return
	}

	log.Printf("profile SUCCESS(PATCH): userId=%s\n", userID)
	utils.WriteJSON(w, http.StatusOK, models.SaveProfileResponse{Message: "Profile updated", UserID: userID})
}

// ReplaceFamily handles PUT /api/profile/{userId}: a full replace of the
// family list. An empty list removes the attribute.
func (c *ProfileController) ReplaceFamily(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	log.Printf("profile START(PUT): userId=%s\n", userID)

	var req models.ReplaceFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if details := utils.ValidateStruct(&req); details != nil {
		log.Printf("Validation error in profile(PUT): %+v\n", details)
		utils.WriteValidationError(w, details)
		return
	}

	if err := c.ProfileService.ReplaceFamily(r.Context(), userID, req.Family); err != nil {
		log.Printf("profile FAILED(PUT): userId=%s: %v\n", userID, err)
		writeDomainError(w, err)
		return
	}

	log.Printf("profile SUCCESS(PUT): userId=%s replacedCount=%d\n", userID, len(req.Family))
	utils.WriteJSON(w, http.StatusOK, models.SaveProfileResponse{Message: "Family replaced", UserID: userID})
}

// GetProfile handles GET /api/profile/{userId}.
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	log.Printf("profile START(GET): userId=%s\n", userID)

	profile, err := c.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		log.Printf("profile FAILED(GET): userId=%s: %v\n", userID, err)
		writeDomainError(w, err)
		return
	}

	if profile.Family == nil {
		profile.Family = []models.FamilyMember{}
	}
	log.Printf("profile SUCCESS(GET): userId=%s\n", userID)
	utils.WriteJSON(w, http.StatusOK, profile)
}
