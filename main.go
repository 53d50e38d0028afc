package main

import (
	"os"
	src "outcome-service/internal/dig"

	"github.com/joho/godotenv"
)

// loadEnv loads .env and then .env.local on top of it; both files are optional.
func loadEnv() {
	for i, path := range []string{"./.env", "./.env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		load := godotenv.Load
		if i > 0 {
			load = godotenv.Overload
		}
		if err := load(path); err != nil {
			panic(err)
		}
	}
}

func main() {
	loadEnv()

	kernel := src.NewKernel()

	app := src.NewApp(kernel)
	if err := app.Run(os.Args); err != nil {
		panic(err)
	}
}
