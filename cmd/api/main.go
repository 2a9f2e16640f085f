package main

import (
	"log/slog"
	"os"

	"github.com/anshika-1705/movieapp/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
