package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/homegrid/homegrid/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ homegrid failed to start: %v", err)
	}
}
