package main

import (
	"log"
	"os"
	"valhalla/internal/content"
	"valhalla/internal/db"
	"valhalla/internal/router"
	"valhalla/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Fail at startup on a broken workout catalogue, not on first view.
	if _, err := content.LoadPlans(); err != nil {
		log.Fatalf("Failed to load workout plans: %v", err)
	}

	secret := services.PasskeySecretFromEnv()
	if !secret.Configured() {
		log.Println("SECRET_PASSKEY is not set, local passkey checks will fail")
	}

	r := router.New(router.Config{
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Verifier:      services.NewPasskeyVerifierFromEnv(),
		Secret:        secret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Valhalla server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
