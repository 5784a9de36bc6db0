package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"kisekae_server/config"
	"kisekae_server/routes"
	"kisekae_server/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env for local runs; deployed environments rely on real env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	// Fetch API keys from Secrets Manager when configured.
	secrets := config.NewSecretsCache()
	if err := secrets.EnsureInitialized(context.Background()); err != nil {
		log.Fatalf("Failed to initialize secrets: %v", err)
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	profileRepo := &services.DynamoProfileRepository{Dynamo: dynamoService}
	weatherClient := services.NewOpenWeatherClient()
	rakutenClient := services.NewRakutenClient()

	profileService := &services.ProfileService{Repo: profileRepo, Weather: weatherClient}
	weatherService := &services.WeatherService{Repo: profileRepo, Weather: weatherClient}
	productService := &services.ProductService{Searcher: rakutenClient}
	clothesService := &services.ClothesService{Repo: profileRepo, Weather: weatherClient, Products: productService}
	homeService := &services.HomeService{
		Repo:          profileRepo,
		Weather:       weatherClient,
		Illustrations: services.NewS3IllustrationService(),
	}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Kisekae")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterWeatherRoutes(r, weatherService)
	routes.RegisterClothesRoutes(r, clothesService)
	routes.RegisterHomeRoutes(r, homeService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
