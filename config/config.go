package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	NATS       NATSConfig       `mapstructure:"nats"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Game       GameConfig       `mapstructure:"game"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Enabled bool   `mapstructure:"enabled"` // false = in-process bus only
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// GameConfig is the single authoritative source for all game math constants.
// Engines receive these values and never hard-code their own.
type GameConfig struct {
	BettingWindow time.Duration `mapstructure:"betting_window"` // crash: accept bets
	TickInterval  time.Duration `mapstructure:"tick_interval"`  // crash: multiplier broadcast
	GrowthRate    float64       `mapstructure:"growth_rate"`    // crash curve: m(t)=exp(r*t^a)
	Acceleration  float64       `mapstructure:"acceleration"`
	HouseEdge     float64       `mapstructure:"house_edge"` // crash instant-bust probability
	RTP           float64       `mapstructure:"rtp"`        // shootout return-to-player
	Countdown     time.Duration `mapstructure:"countdown"`  // shootout: join -> resolve
	SpinDelay     time.Duration `mapstructure:"spin_delay"` // shootout: resolve -> settle
	GraceWindow   time.Duration `mapstructure:"grace_window"`
	MinBet        int64         `mapstructure:"min_bet"`
	MaxBet        int64         `mapstructure:"max_bet"`
}

type SettlementConfig struct {
	Endpoint       string        `mapstructure:"endpoint"` // external transfer API base URL
	APIKey         string        `mapstructure:"api_key"`
	CustodyAddress string        `mapstructure:"custody_address"` // house address withdrawals pay out from
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
	RetryBackoff   time.Duration `mapstructure:"retry_backoff"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	BatchSize      int           `mapstructure:"batch_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FW_.
// Nested keys use underscore: FW_DATABASE_HOST, FW_GAME_HOUSE_EDGE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fairwager")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.enabled", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "fairwager")
	v.SetDefault("game.betting_window", "5s")
	v.SetDefault("game.tick_interval", "100ms")
	v.SetDefault("game.growth_rate", 0.06)
	v.SetDefault("game.acceleration", 1.0)
	v.SetDefault("game.house_edge", 0.03)
	v.SetDefault("game.rtp", 0.95)
	v.SetDefault("game.countdown", "3s")
	v.SetDefault("game.spin_delay", "4s")
	v.SetDefault("game.grace_window", "2m")
	v.SetDefault("game.min_bet", 1_0000)       // 1.0000 units
	v.SetDefault("game.max_bet", 10_000_0000)  // 10,000.0000 units
	v.SetDefault("settlement.endpoint", "http://localhost:9090")
	v.SetDefault("settlement.api_key", "")
	v.SetDefault("settlement.custody_address", "house-custody")
	v.SetDefault("settlement.request_timeout", "10s")
	v.SetDefault("settlement.max_attempts", 5)
	v.SetDefault("settlement.retry_backoff", "2s")
	v.SetDefault("settlement.poll_interval", "1s")
	v.SetDefault("settlement.batch_size", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: FW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("FW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Game.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (g GameConfig) validate() error {
	if g.HouseEdge <= 0 || g.HouseEdge >= 1 {
		return fmt.Errorf("game.house_edge must be in (0,1), got %v", g.HouseEdge)
	}
	// Below 0.5 the pvp rake pot*(1-rtp) exceeds the winner's wager and no
	// settlement can balance.
	if g.RTP <= 0.5 || g.RTP > 1 {
		return fmt.Errorf("game.rtp must be in (0.5,1], got %v", g.RTP)
	}
	if g.GrowthRate <= 0 || g.Acceleration <= 0 {
		return fmt.Errorf("game.growth_rate and game.acceleration must be positive")
	}
	if g.MinBet <= 0 || g.MaxBet < g.MinBet {
		return fmt.Errorf("invalid bet limits: min=%d max=%d", g.MinBet, g.MaxBet)
	}
	return nil
}
