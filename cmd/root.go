package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mtlaird/steam-db/config"
	"github.com/mtlaird/steam-db/internal/httpdoc"
	"github.com/mtlaird/steam-db/internal/httputil"
	"github.com/mtlaird/steam-db/internal/politeness"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "steam-db",
	Short: "steam-db - Steam store metadata and wishlist discount CLI",
	Long:  "A CLI tool and MCP server for looking up Steam app metadata and analyzing wishlist discounts.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("delay-profile", "normal", "Delay profile: cautious, normal, aggressive")
	rootCmd.PersistentFlags().Bool("respect-robots", true, "Respect robots.txt rules")
	rootCmd.PersistentFlags().Bool("headless", false, "Render pages with a headless browser")
	rootCmd.PersistentFlags().String("country", "", "Store country code for pricing rows")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("delay-profile"); v != "" {
		cfg.DelayProfile = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("respect-robots"); !v {
		cfg.RespectRobots = false
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("headless"); v {
		cfg.Headless = true
	}
	if v, _ := rootCmd.PersistentFlags().GetString("country"); v != "" {
		cfg.CountryCode = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("debug"); v {
		cfg.Debug = true
	}

	logrus.SetOutput(os.Stderr)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// buildFetcher creates the polite-transport document fetcher from config.
func buildFetcher() httpdoc.Fetcher {
	delay := politeness.NewDelay(politeness.DelayProfile(cfg.DelayProfile))
	limiter := rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)

	baseTransport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	robotsClient := &http.Client{Timeout: 10 * time.Second}
	robots := politeness.NewRobotsChecker(robotsClient, cfg.RespectRobots)

	transport := &politeness.Transport{
		Base:        baseTransport,
		Robots:      robots,
		Delay:       delay,
		RateLimiter: limiter,
	}

	client := httpdoc.NewClient(httputil.NewHTTPClient(transport))
	if cfg.Headless {
		return httpdoc.NewHeadlessFetcher(client)
	}
	return client
}
