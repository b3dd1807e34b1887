package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/bismatayyab23-tech/medrag-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A .env file in the working directory can carry GEMINI_API_KEY so the
	// key never has to live in the config file. Absence is not an error.
	_ = godotenv.Load()

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
