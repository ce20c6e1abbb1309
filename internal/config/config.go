package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server/CLI configuration tree.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Battle  BattleConfig  `mapstructure:"battle"`
}

// ServerConfig holds the websocket listener settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LoggingConfig selects log level and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig points at optional card/opponent set files layered on top
// of the builtin catalog.
type CatalogConfig struct {
	CardsFile     string `mapstructure:"cards_file"`
	OpponentsFile string `mapstructure:"opponents_file"`
}

// BattleConfig carries the default battle setup and balance overrides.
// Zero-valued balance fields keep the engine defaults.
type BattleConfig struct {
	StartingFace     int      `mapstructure:"starting_face"`
	StartingPatience int      `mapstructure:"starting_patience"`
	StartingFavor    int      `mapstructure:"starting_favor"`
	DeckCardIDs      []string `mapstructure:"deck_card_ids"`
	OpponentIndices  []int    `mapstructure:"opponent_indices"`

	Balance BalanceConfig `mapstructure:"balance"`
}

// BalanceConfig overrides individual gameplay constants.
type BalanceConfig struct {
	HandSize                 int `mapstructure:"hand_size"`
	BalancedPatienceDiscount int `mapstructure:"balanced_patience_discount"`
	ChaosFaceSurcharge       int `mapstructure:"chaos_face_surcharge"`
	ChaosFavorBonus          int `mapstructure:"chaos_favor_bonus"`
	ShockTurns               int `mapstructure:"shock_turns"`
	TurnPatienceTick         int `mapstructure:"turn_patience_tick"`
	FavorJudgementBar        int `mapstructure:"favor_judgement_bar"`
}

// Load reads configuration from the given file. An empty path loads the
// built-in defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8090")
	v.SetDefault("server.read_timeout", 60*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("battle.starting_face", 60)
	v.SetDefault("battle.starting_patience", 20)
	v.SetDefault("battle.starting_favor", 0)
	v.SetDefault("battle.opponent_indices", []int{0})
}

func (c *Config) validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}
	if c.Battle.StartingFace <= 0 {
		return fmt.Errorf("battle.starting_face must be positive")
	}
	if c.Battle.StartingPatience <= 0 {
		return fmt.Errorf("battle.starting_patience must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
