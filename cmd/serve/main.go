package main

import (
	"log"
	"net/http"
	"os"

	"facilitymap/config"
	"facilitymap/handlers"
	"facilitymap/services"
)

func main() {
	log.Println("Starting facility map API server...")

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = ""
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, static data dir: %s",
		config.AppConfig.Server.Port, config.AppConfig.StaticData.Dir)

	service, err := services.NewLocationService()
	if err != nil {
		log.Fatalf("Error loading static data: %v", err)
	}

	h := handlers.NewLocationHandler(service)
	http.HandleFunc("/api/locations", h.GetLocations)
	http.HandleFunc("/api/aphis-reports", h.GetAphisReports)
	http.HandleFunc("/api/inspection-reports", h.GetInspectionReports)
	http.HandleFunc("/api/health", handlers.Health)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
