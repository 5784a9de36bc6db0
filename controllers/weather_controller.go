package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"kisekae_server/models"
	"kisekae_server/services"
	"kisekae_server/utils"
)

// WeatherController handles current and hourly weather requests.
type WeatherController struct {
	WeatherService *services.WeatherService
}

// NewWeatherController creates a new instance of WeatherController.
func NewWeatherController(weatherService *services.WeatherService) *WeatherController {
	return &WeatherController{WeatherService: weatherService}
}

// GetWeather handles GET /api/weather?region=... or ?userId=...
func (c *WeatherController) GetWeather(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	userID := r.URL.Query().Get("userId")
	log.Printf("weather START: region=%q userId=%q\n", region, userID)

	if region == "" && userID == "" {
		utils.WriteValidationError(w, map[string][]models.FieldErrorDetail{
			"region": {{Code: "E001_INVALID_TYPE", Message: "入力形式が正しくありません。"}},
		})
		return
	}

	var (
		response *models.WeatherResponse
		err      error
	)
	if userID != "" {
		response, err = c.WeatherService.GetByUser(r.Context(), userID)
	} else {
		response, err = c.WeatherService.GetByRegion(r.Context(), region)
	}
	if err != nil {
		log.Printf("weather FAILED: %v\n", err)
		writeDomainError(w, err)
		return
	}

	log.Printf("weather SUCCESS: region=%s category=%s\n", response.Region, response.Temperature.Category)
	utils.WriteJSON(w, http.StatusOK, response)
}

const (
	defaultLimitHours = 24
	maxLimitHours     = 48
)

// GetHourly handles GET /api/weather/hourly/{userId}?limitHours=1..48.
func (c *WeatherController) GetHourly(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	log.Printf("weather/hourly START: userId=%s\n", userID)

	limitHours := defaultLimitHours
	if v := r.URL.Query().Get("limitHours"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxLimitHours {
			utils.WriteValidationError(w, map[string][]models.FieldErrorDetail{
				"limitHours": {{Code: "E004_INVALID_STRING", Message: "文字列の形式が正しくありません。"}},
			})
			return
		}
		limitHours = n
	}

	response, err := c.WeatherService.GetHourlyForUser(r.Context(), userID, limitHours)
	if err != nil {
		log.Printf("weather/hourly FAILED: userId=%s: %v\n", userID, err)
		writeDomainError(w, err)
		return
	}

	log.Printf("weather/hourly SUCCESS: userId=%s count=%d intervalHours=%d\n", userID, len(response.Hourly), response.IntervalHours)
	utils.WriteJSON(w, http.StatusOK, response)
}
