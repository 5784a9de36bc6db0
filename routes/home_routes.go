package routes

import (
	"kisekae_server/controllers"
	"kisekae_server/services"

	"github.com/gorilla/mux"
)

// RegisterHomeRoutes sets up routes for the household view under /api/home
func RegisterHomeRoutes(r *mux.Router, homeService *services.HomeService) {
	controller := controllers.NewHomeController(homeService)

	homeRouter := r.PathPrefix("/api/home").Subrouter()

	homeRouter.HandleFunc("/{userId}", controller.GetHome).Methods("GET")
}
