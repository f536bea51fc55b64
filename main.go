package main

import (
	"flag"
	"log"

	"yashubustudio/feedbackanalyzer/internal/app"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (default: ./config.yaml)")
	flag.Parse()
	if err := app.Run(*configPath); err != nil {
		log.Fatalf("feedbackanalyzer: %v", err)
	}
}
