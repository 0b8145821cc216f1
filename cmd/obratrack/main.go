// cmd/obratrack/main.go - Entry point
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lucasmtn/obratrack/internal/config"
	"github.com/lucasmtn/obratrack/internal/handlers"
	"github.com/lucasmtn/obratrack/internal/store"
)

func main() {
	// Config
	dbPath := getEnv("DB_PATH", "data/obratrack.db")
	port := getEnv("PORT", "8080")
	configPath := getEnv("SITE_CONFIG", "site.yaml")
	photosDir := getEnv("PHOTOS_DIR", "data/photos")

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load site config: %v", err)
	}

	// Init database
	db, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	log.Printf("Database initialized: %s", dbPath)

	if err := db.SeedServiceTypes(cfg.ServiceTypes); err != nil {
		log.Fatalf("Failed to seed service types: %v", err)
	}

	// Init handlers
	handler, err := handlers.New(db, cfg, photosDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Static files and demand photos
	fs := http.FileServer(http.Dir("web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))
	photos := http.FileServer(http.Dir(photosDir))
	r.Handle("/photos/*", http.StripPrefix("/photos/", photos))

	// Routes
	r.Get("/", handler.Dashboard)

	// Demands
	r.Get("/demands", handler.Demands)
	r.Get("/demands/export", handler.ExportDemands)
	r.Post("/demands", handler.CreateDemand)
	r.Post("/demands/{id}/resolve", handler.ResolveDemand)
	r.Post("/demands/{id}/reopen", handler.ReopenDemand)
	r.Post("/demands/{id}/photo", handler.UploadDemandPhoto)
	r.Post("/demands/{id}/delete", handler.DeleteDemand)

	// Schedules
	r.Get("/schedules", handler.Schedules)
	r.Get("/schedules/{id}", handler.ScheduleDetail)
	r.Post("/schedules", handler.CreateSchedule)
	r.Post("/schedules/{id}/delete", handler.DeleteSchedule)

	// Openings
	r.Get("/openings", handler.Openings)
	r.Post("/openings", handler.CreateOpening)
	r.Post("/openings/{id}/install", handler.InstallOpening)
	r.Post("/openings/{id}/delete", handler.DeleteOpening)

	// Paintings
	r.Get("/paintings", handler.Paintings)
	r.Post("/paintings", handler.SetPaintingStage)

	// Measurements
	r.Get("/measurements", handler.Measurements)
	r.Post("/measurements", handler.CreateMeasurement)
	r.Post("/measurements/{id}/delete", handler.DeleteMeasurement)

	// Materials
	r.Get("/materials", handler.Materials)
	r.Post("/materials", handler.CreateLot)
	r.Post("/materials/{id}/receive", handler.ReceiveLot)
	r.Post("/materials/{id}/apply", handler.ApplyLot)
	r.Post("/materials/{id}/delete", handler.DeleteLot)

	// Employees
	r.Get("/employees", handler.Employees)
	r.Post("/employees", handler.CreateEmployee)
	r.Post("/employees/{id}/toggle", handler.ToggleEmployee)
	r.Post("/employees/{id}/assign", handler.AssignEmployee)
	r.Post("/employees/{id}/rate", handler.RateEmployee)

	// Offline draft sync
	r.Post("/api/drafts/sync", handler.SyncDrafts)

	// Health check
	r.Get("/health", handler.Health)

	// Start server
	addr := ":" + port
	log.Printf("obratrack starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
