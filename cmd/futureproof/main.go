// Package main is the FutureProof career guidance server and CLI.
//
// @title                       FutureProof Career Guidance API
// @version                     1.0
// @description                 Career recommendations, learning roadmaps, progress tracking and an advisory chat.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/futureproof/careerguide/internal/pkg/config"
	"github.com/futureproof/careerguide/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "futureproof",
	Short:         "FutureProof career guidance service",
	Long:          "FutureProof recommends career roles, serves learning roadmaps, tracks progress and relays an advisory chat.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  !cfg.IsProduction(),
			Service: "futureproof",
		})
		return nil
	},
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
