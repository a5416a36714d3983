package game

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/zappabad/paperhands/internal/market"
	"github.com/zappabad/paperhands/internal/news"
	"github.com/zappabad/paperhands/internal/player"
	"github.com/zappabad/paperhands/internal/pricing"
)

// Config holds configuration for a whole game session.
type Config struct {
	// PlayerName labels the session's player.
	PlayerName string `toml:"player_name"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `toml:"seed"`
	// NewsPerDay is how many news items each day generates.
	NewsPerDay int `toml:"news_per_day"`
	// SavePath locates the SQLite save store.
	SavePath string `toml:"save_path"`
	// Market configures the market simulation.
	Market market.Config `toml:"market"`
	// Pricing configures the price movement generator.
	Pricing pricing.Config `toml:"pricing"`
	// News configures the news service.
	News news.Config `toml:"news"`
	// Player configures trading terms.
	Player player.Config `toml:"player"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		PlayerName: "Trader",
		NewsPerDay: 3,
		SavePath:   "paperhands.db",
		Market:     market.DefaultConfig(),
		Pricing:    pricing.DefaultConfig(),
		News:       news.DefaultConfig(),
		Player:     player.DefaultConfig(),
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("game: reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("game: parsing config: %w", err)
	}
	return cfg, nil
}
