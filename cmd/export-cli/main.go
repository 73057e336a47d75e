package main

import (
	"os"

	"github.com/MuhamadAgungGumelar/marketing-insights-be/internal/shared/utils"
)

func main() {
	utils.InitLogger(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))

	if err := newRootCmd().Execute(); err != nil {
		utils.LogError("export-cli failed", err, nil)
		os.Exit(1)
	}
}
