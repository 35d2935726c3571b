package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/es-debug/liner/internal/application/liner"
)

func main() {
	if err := liner.Start(); err != nil {
		slog.Error(fmt.Sprintf("liner.Start(): %s", err))
		os.Exit(1)
	}
}
