// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "WheelWord"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultLogLevel    = "info"
	DefaultAuthEnabled = false
)

// ゲームのデフォルトルール
const (
	DefaultAttemptLimit      = 6
	DefaultMinWordLength     = 4
	DefaultMaxWordLength     = 11
	DefaultCandidatePoolSize = 50
	DefaultCooldownGames     = 70
	DefaultAlphabet          = "ABCDEFGHIJKLMNÑOPQRSTUVWXYZÁÉÍÓÚÜ"
	DefaultShareTitle        = "WheelWord"
	DefaultShareFooterURL    = "https://wheelword.app"
)
