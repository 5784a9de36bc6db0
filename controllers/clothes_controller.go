package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"kisekae_server/models"
	"kisekae_server/services"
	"kisekae_server/utils"
)

// ClothesController serves clothing suggestions.
type ClothesController struct {
	ClothesService *services.ClothesService
}

// NewClothesController creates a new instance of ClothesController.
func NewClothesController(clothesService *services.ClothesService) *ClothesController {
	return &ClothesController{ClothesService: clothesService}
}

// GetClothes handles POST /api/clothes.
func (c *ClothesController) GetClothes(w http.ResponseWriter, r *http.Request) {
	var req models.ClothesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	log.Printf("clothes START: userId=%s withProducts=%v\n", req.UserID, req.WithProducts)

	if details := utils.ValidateStruct(&req); details != nil {
		log.Printf("Validation error in clothes: %+v\n", details)
		utils.WriteValidationError(w, details)
		return
	}

	response, err := c.ClothesService.GetClothesForUser(r.Context(), req.UserID, req.WithProducts)
	if err != nil {
		log.Printf("clothes FAILED: userId=%s: %v\n", req.UserID, err)
		writeDomainError(w, err)
		return
	}

	log.Printf("clothes SUCCESS: userId=%s ageGroup=%s category=%s\n", req.UserID, response.AgeGroup, response.Temperature.Category)
	utils.WriteJSON(w, http.StatusOK, response)
}
