package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"peacey/internal/catalog"
	"peacey/internal/config"
	"peacey/internal/intent"
	"peacey/internal/logging"
	"peacey/internal/mcpserver"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warnf(".env file not found: %v", err)
	}

	cfg := config.New()
	// stdout carries the MCP protocol, so logs go to stderr.
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		logrus.Fatalf("failed to configure logging: %v", err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		c, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			logrus.Fatalf("failed to load catalog: %v", err)
		}
		cat = c
	}
	matcher := intent.NewMatcher(intent.DefaultTable(cat, cfg.AssistantName))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "peacey-mcp",
		Version: "1.0.0",
	}, nil)
	mcpserver.New(matcher, cat).Register(server)

	logrus.Info("registered tools: ask_peacey, list_packages, package_price; serving on stdin/stdout")
	if err := server.Run(context.Background(), mcp.NewStdioTransport()); err != nil {
		logrus.Fatalf("mcp server failed: %v", err)
	}
}
