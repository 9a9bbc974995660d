package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// General
	CountryCode   string // store country code used for regional pricing rows
	RespectRobots bool
	DelayProfile  string // "cautious", "normal", "aggressive"
	Headless      bool   // render pages with a headless browser instead of plain HTTP
	Debug         bool

	// Rate limiting
	RatePerSecond float64
	RateBurst     int

	// Steam Web API credentials (owned-games lookup only)
	APIKey  string
	SteamID string

	// MCP HTTP server
	HTTPPort  string
	MCPAPIKey string
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CountryCode:   "us",
		RespectRobots: true,
		DelayProfile:  "normal",
		RatePerSecond: 1.0,
		RateBurst:     2,
		HTTPPort:      "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("STEAMDB_COUNTRY"); v != "" {
		c.CountryCode = v
	}
	if v := os.Getenv("STEAMDB_DELAY_PROFILE"); v != "" {
		c.DelayProfile = v
	}
	if v := os.Getenv("STEAMDB_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("STEAMDB_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("STEAMDB_RESPECT_ROBOTS"); v == "false" {
		c.RespectRobots = false
	}
	if v := os.Getenv("STEAMDB_HEADLESS"); v == "true" {
		c.Headless = true
	}
	if v := os.Getenv("STEAMDB_DEBUG"); v == "true" {
		c.Debug = true
	}
	if v := os.Getenv("STEAM_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("STEAM_ID"); v != "" {
		c.SteamID = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("STEAMDB_MCP_API_KEY"); v != "" {
		c.MCPAPIKey = v
	}
}
