package routes

import (
	"kisekae_server/controllers"
	"kisekae_server/services"

	"github.com/gorilla/mux"
)

// RegisterClothesRoutes sets up routes for clothing suggestions under /api/clothes
func RegisterClothesRoutes(r *mux.Router, clothesService *services.ClothesService) {
	controller := controllers.NewClothesController(clothesService)

	clothesRouter := r.PathPrefix("/api/clothes").Subrouter()

	clothesRouter.HandleFunc("", controller.GetClothes).Methods("POST")
}
