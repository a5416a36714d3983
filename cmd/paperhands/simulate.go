package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zappabad/paperhands/internal/analytics"
	"github.com/zappabad/paperhands/internal/game"
)

var simulateDays int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the market headless and print a summary",
	Long: `Simulates the market for a number of days without any trading and
prints per-company statistics. Useful for tuning volatility settings and for
checking that a seed produces an interesting run.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateDays, "days", 365, "number of days to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simulateDays <= 0 {
		return fmt.Errorf("days must be positive, got %d", simulateDays)
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	g := game.New(cfg, nil, logger)
	indexSeries := make([]float64, 0, simulateDays+1)
	indexSeries = append(indexSeries, g.Market().Index())
	for i := 0; i < simulateDays; i++ {
		g.AdvanceDay()
		indexSeries = append(indexSeries, g.Market().Index())
	}

	m := g.Market()
	state := m.State()
	fmt.Printf("After %d days (seed %d):\n", simulateDays, cfg.Seed)
	fmt.Printf("  Index       %.2f (trend %s)\n", state.IndexValue, state.Trend)
	fmt.Printf("  Rates       interest %.2f%%  inflation %.2f%%  unemployment %.2f%%\n",
		state.InterestRate*100, state.InflationRate*100, state.UnemploymentRate*100)

	returns := analytics.DailyReturns(indexSeries)
	fmt.Printf("  Volatility  %.2f%% annualized, max drawdown %.2f%%\n\n",
		analytics.AnnualizedVolatility(returns)*100, analytics.MaxDrawdown(indexSeries)*100)

	fmt.Printf("%-6s %-22s %10s %10s %10s %9s\n", "Ticker", "Company", "Price", "High", "Low", "Drawdown")
	for _, c := range m.Companies() {
		stock := c.Stock()
		prices := make([]float64, 0, len(stock.History()))
		for _, point := range stock.History() {
			prices = append(prices, point.Price)
		}
		fmt.Printf("%-6s %-22s %10.2f %10.2f %10.2f %8.1f%%\n",
			c.Ticker(), c.Name(),
			stock.CurrentPrice(), stock.HighestPrice(), stock.LowestPrice(),
			analytics.MaxDrawdown(prices)*100)
	}
	return nil
}
