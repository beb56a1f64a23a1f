package main

import (
	"os"

	"github.com/HuyTapCode05/quanlythuchi/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine, the environment is used as it is
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
