package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// Config — конфигурация процесса, читается из окружения один раз при старте.
type Config struct {
	// APIToken — токен monday.com API. Обязателен: без него процесс не стартует.
	APIToken string

	// APIURL — базовый URL monday.com API (переопределяется в тестах).
	APIURL string

	// Port — порт HTTP сервера.
	Port string

	// AllowedOrigins — allow-list для CORS. Пустой список = только no-origin клиенты.
	AllowedOrigins []string

	// UploadDir — каталог для временных файлов загрузок.
	UploadDir string
}

// ErrMissingToken возвращается, если MONDAY_API_TOKEN не задан.
var ErrMissingToken = errors.New("MONDAY_API_TOKEN is required")

// Load читает конфигурацию из переменных окружения.
func Load() (*Config, error) {
	viper.SetDefault("MONDAY_API_URL", "https://api.monday.com")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGINS", []string{})
	viper.SetDefault("UPLOAD_DIR", os.TempDir())

	viper.AutomaticEnv()

	cfg := &Config{
		APIToken:       viper.GetString("MONDAY_API_TOKEN"),
		APIURL:         viper.GetString("MONDAY_API_URL"),
		Port:           viper.GetString("PORT"),
		AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
		UploadDir:      viper.GetString("UPLOAD_DIR"),
	}

	if cfg.APIToken == "" {
		return nil, ErrMissingToken
	}

	return cfg, nil
}
