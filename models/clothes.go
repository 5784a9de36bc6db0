package models

import "kisekae_server/rules"

// Product is one marketplace item candidate attached to a suggestion.
type Product struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Image string `json:"image"`
	Price int    `json:"price"`
	Shop  string `json:"shop"`
}

// ClothesTemperature is the temperature block on a clothes response.
type ClothesTemperature struct {
	Value     float64               `json:"value"`
	FeelsLike float64               `json:"feelsLike"`
	Category  rules.TemperatureBand `json:"category"`
}

// ClothesResponse is the POST /clothes payload. Products is only
// populated when product enrichment was requested; a marketplace failure
// leaves it empty rather than failing the request.
type ClothesResponse struct {
	UserID      string                   `json:"userId"`
	AgeGroup    rules.AgeGroup           `json:"ageGroup"`
	Temperature ClothesTemperature       `json:"temperature"`
	Suggestion  rules.ClothingSuggestion `json:"suggestion"`
	LayerSpecs  []rules.LayerSpec        `json:"layerSpecs"`
	Products    []Product                `json:"products,omitempty"`
}

// HomeMemberCard is one household member on the home view.
type HomeMemberCard struct {
	Name            string                   `json:"name"`
	AgeGroup        rules.GeneralAgeGroup    `json:"ageGroup"`
	Suggestion      rules.ClothingSuggestion `json:"suggestion"`
	IllustrationURL string                   `json:"illustrationUrl,omitempty"`
}

// HomeWeather is the single weather block shared by every member card.
type HomeWeather struct {
	Region    string                `json:"region"`
	Value     float64               `json:"value"`
	FeelsLike float64               `json:"feelsLike"`
	Humidity  float64               `json:"humidity"`
	WindSpeed float64               `json:"windSpeed"`
	Category  rules.TemperatureBand `json:"category"`
	Condition string                `json:"condition"`
}

// HomeTodayResponse is the GET /home/{userId} payload.
type HomeTodayResponse struct {
	Summary string           `json:"summary"`
	Message string           `json:"message"`
	Weather HomeWeather      `json:"weather"`
	Members []HomeMemberCard `json:"members"`
}
