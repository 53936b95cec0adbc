package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/aussiebroadwan/medbook/internal/booking/app"
	"github.com/joho/godotenv"
)

func main() {
	loadLocalEnv()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

// loadLocalEnv reads .env.local then .env from the working directory.
// Variables already set in the environment win.
func loadLocalEnv() {
	for _, file := range []string{".env.local", ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("ignoring %s: %v", file, err)
		}
	}
}
