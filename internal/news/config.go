package news

// Config holds the news service tunables.
type Config struct {
	// ItemsPerDay is the default number of items generated per day.
	ItemsPerDay int `toml:"items_per_day"`
	// HistorySize is the capacity of the retained news tape.
	HistorySize int `toml:"history_size"`
	// TemplatePath points at a TOML template pack. Empty or unreadable
	// paths fall back to the built-in templates.
	TemplatePath string `toml:"template_path"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		ItemsPerDay: 3,
		HistorySize: 1000,
	}
}
