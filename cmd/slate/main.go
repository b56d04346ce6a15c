package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prop-parlay/internal/config"
	"github.com/yourusername/prop-parlay/internal/datasource"
	"github.com/yourusername/prop-parlay/internal/engine"
	"github.com/yourusername/prop-parlay/internal/service"
)

var (
	configFile string
	gameID     string
	stake      float64

	appLog   *logrus.Logger
	cfg      *config.Config
	slateSvc *service.SlateService
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&gameID, "game", "g", "", "Game ID to grade (required)")
	rootCmd.Flags().Float64VarP(&stake, "stake", "s", 0, "Stake amount (defaults to configured default)")
	rootCmd.MarkFlagRequired("game")
}

var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "Grade and price one game slate",
	Long:  `Fetches props, predictions and context for a game, grades every leg and prints the priced parlay variants.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return displaySlate()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies() error {
	appLog = logrus.New()
	appLog.SetLevel(logrus.WarnLevel)

	feedLogger := log.New(os.Stderr, "stats-feed: ", log.LstdFlags)
	feed, err := datasource.NewFeedSource(cfg, feedLogger)
	if err != nil {
		return fmt.Errorf("failed to create feed source: %w", err)
	}

	slateSvc = service.NewSlateService(feed, engine.New(appLog), cfg.SlateCacheTTL(), cfg.Engine.DefaultStake, appLog)
	return nil
}

func displaySlate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := slateSvc.GetSlate(ctx, gameID, stake)
	if err != nil {
		return fmt.Errorf("failed to grade game %s: %w", gameID, err)
	}

	fmt.Printf("\nSlate for game %s (generated %s)\n\n", result.GameID, result.GeneratedAt.Format(time.RFC3339))

	fmt.Printf("%-22s %-22s %6s %6s %8s %6s %7s\n", "PLAYER", "STAT", "LINE", "PRED", "SIDE", "ODDS", "GRADE")
	for _, leg := range result.Legs {
		fmt.Printf("%-22s %-22s %6.1f %6.1f %8s %+6d %6.0f%%\n",
			leg.PlayerName, leg.StatType, leg.Line, leg.Predicted,
			leg.Side, leg.RecommendedOdds, leg.Grade*100)
	}

	for _, parlay := range result.Parlays {
		fmt.Printf("\n%s (%d legs, risk %s)\n", parlay.Name, len(parlay.Legs), parlay.Risk)
		for _, leg := range parlay.Legs {
			fmt.Printf("  %s %s %s %.1f (%+d)\n", leg.PlayerName, leg.Side, leg.StatType, leg.Line, leg.RecommendedOdds)
		}
		fmt.Printf("  odds %+d (decimal %.2f, correlation discount %.1f%%)\n",
			parlay.AmericanOdds, parlay.DecimalOdds, parlay.DiscountPercent)
		fmt.Printf("  stake $%s pays $%s (profit $%s, est. hit %.1f%%)\n",
			parlay.Stake.StringFixed(2), parlay.Payout.StringFixed(2),
			parlay.Profit.StringFixed(2), parlay.HitProbability)
		if parlay.Reasoning != "" {
			fmt.Printf("  %s\n", parlay.Reasoning)
		}
	}

	if len(result.Parlays) == 0 {
		fmt.Println("\nNo parlay variants could be assembled for this slate.")
	}

	playable := 0
	for i := range result.Legs {
		if result.Legs[i].IsPlayable() {
			playable++
		}
	}
	fmt.Printf("\n%d legs graded (%d playable), %d parlays priced\n", len(result.Legs), playable, len(result.Parlays))
	return nil
}
