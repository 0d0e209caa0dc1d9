package main

import (
	"fractional-quest-backend/internal/delivery/mcptools"
	"fractional-quest-backend/pkg/logger"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the onboarding tools over MCP stdio",
	RunE: func(cmd *cobra.Command, _ []string) error {
		srv := mcptools.NewServer(mcptools.Deps{OnboardingUC: newOnboardingUsecase()})

		logger.Log.Info("MCP server started (stdio transport)")
		return server.ServeStdio(srv)
	},
}
