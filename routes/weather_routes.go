package routes

import (
	"kisekae_server/controllers"
	"kisekae_server/services"

	"github.com/gorilla/mux"
)

// RegisterWeatherRoutes sets up routes for weather lookups under /api/weather
func RegisterWeatherRoutes(r *mux.Router, weatherService *services.WeatherService) {
	controller := controllers.NewWeatherController(weatherService)

	weatherRouter := r.PathPrefix("/api/weather").Subrouter()

	weatherRouter.HandleFunc("", controller.GetWeather).Methods("GET")
	weatherRouter.HandleFunc("/hourly/{userId}", controller.GetHourly).Methods("GET")
}
