package controllers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"kisekae_server/services"
	"kisekae_server/utils"
)

// HomeController serves the aggregated household view.
type HomeController struct {
	HomeService *services.HomeService
}

// NewHomeController creates a new instance of HomeController.
func NewHomeController(homeService *services.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// GetHome handles GET /api/home/{userId}: one shared weather block, one
// card per household member, and a generated summary message.
func (c *HomeController) GetHome(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	log.Printf("home START: userId=%s\n", userID)

	response, err := c.HomeService.GetHomeToday(r.Context(), userID)
	if err != nil {
		log.Printf("home FAILED: userId=%s: %v\n", userID, err)
		writeDomainError(w, err)
		return
	}

	log.Printf("home SUCCESS: userId=%s membersCount=%d weatherCategory=%s\n", userID, len(response.Members), response.Weather.Category)
	utils.WriteJSON(w, http.StatusOK, response)
}
