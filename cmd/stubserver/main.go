package main

import (
	"log"

	"github.com/fridgechef/recipe-client/internal/builder"
)

func main() {
	app, err := builder.Build()
	if err != nil {
		log.Fatal("Failed to build stub server:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Stub server error:", err)
	}
}
