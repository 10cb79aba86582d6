// internal/config/config.go
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// GameConfig はデイリーパズルのルール
type GameConfig struct {
	AttemptLimit      int    `mapstructure:"attempt_limit"`
	MinWordLength     int    `mapstructure:"min_word_length"`
	MaxWordLength     int    `mapstructure:"max_word_length"`
	CandidatePoolSize int    `mapstructure:"candidate_pool_size"`
	CooldownGames     int    `mapstructure:"cooldown_games"`
	Alphabet          string `mapstructure:"alphabet"`
	ShareTitle        string `mapstructure:"share_title"`
	ShareFooterURL    string `mapstructure:"share_footer_url"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	CORS     CORSConfig     `mapstructure:"cors"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Game     GameConfig     `mapstructure:"game"`
}

var Cfg Config

// Default はデフォルト値だけで構成された設定を返します (テスト用にも使う)
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Auth.Enabled = DefaultAuthEnabled
	return cfg
}

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP") // 例: APP_GAME_ATTEMPT_LIMIT
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	// 未設定なら認証を有効にする
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Attempt Limit: %d, Word Length: %d-%d", Cfg.Game.AttemptLimit, Cfg.Game.MinWordLength, Cfg.Game.MaxWordLength)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if len(cfg.CORS.AllowedMethods) == 0 {
		cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowedHeaders) == 0 {
		cfg.CORS.AllowedHeaders = []string{"Authorization", "Content-Type", "X-Player-ID"}
	}

	g := &cfg.Game
	if g.AttemptLimit <= 0 {
		g.AttemptLimit = DefaultAttemptLimit
	}
	if g.MinWordLength <= 0 {
		g.MinWordLength = DefaultMinWordLength
	}
	if g.MaxWordLength < g.MinWordLength {
		g.MaxWordLength = max(DefaultMaxWordLength, g.MinWordLength)
	}
	if g.CandidatePoolSize <= 0 {
		g.CandidatePoolSize = DefaultCandidatePoolSize
	}
	if g.CooldownGames < 0 {
		g.CooldownGames = 0
	} else if g.CooldownGames == 0 && !viper.IsSet("game.cooldown_games") {
		g.CooldownGames = DefaultCooldownGames
	}
	if g.Alphabet == "" {
		g.Alphabet = DefaultAlphabet
	}
	if g.ShareTitle == "" {
		g.ShareTitle = DefaultShareTitle
	}
	if g.ShareFooterURL == "" {
		g.ShareFooterURL = DefaultShareFooterURL
	}
}
