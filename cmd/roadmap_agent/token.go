package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/careerpilot/roadmap-agent/internal/config"
	"github.com/careerpilot/roadmap-agent/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an API bearer token",
	Long:  "Generates a signed bearer token for the REST API. Requires ROADMAP_AUTH_SECRET to be set to the same value the server uses.",
	RunE:  runTokenCmd,
}

var tokenClientID string

func init() {
	tokenCmd.Flags().StringVar(&tokenClientID, "client-id", "", "Client UUID to embed in the token (optional, a new one is generated)")
	rootCmd.AddCommand(tokenCmd)
}

func runTokenCmd(_ *cobra.Command, _ []string) error {
	authConfig, err := config.NewAuthConfig()
	if err != nil {
		return fmt.Errorf("failed to create auth config: %w", err)
	}
	if authConfig == nil {
		return fmt.Errorf("ROADMAP_AUTH_SECRET is not set")
	}

	clientID := uuid.New()
	if tokenClientID != "" {
		clientID, err = uuid.Parse(tokenClientID)
		if err != nil {
			return fmt.Errorf("invalid client-id: %w", err)
		}
	}

	token, err := server.NewJWTService(authConfig).GenerateToken(clientID)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Printf("client_id: %s\n", clientID)
	fmt.Println(token)
	return nil
}
