package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	Judge0URL      string `mapstructure:"JUDGE0_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	// redis | memory. memory — только для single-instance запуска.
	RateLimitStore     string `mapstructure:"RATE_LIMIT_STORE"`
	LoginRateLimit     int    `mapstructure:"LOGIN_RATE_LIMIT"`
	LoginRateWindowMin int    `mapstructure:"LOGIN_RATE_WINDOW_MIN"`
	ExecRateLimit      int    `mapstructure:"EXECUTE_RATE_LIMIT"`
	ExecRateWindowMin  int    `mapstructure:"EXECUTE_RATE_WINDOW_MIN"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// ВАЖНО: Явно биндим переменные, чтобы Viper их видел без файла
	viper.BindEnv("PORT")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("JUDGE0_URL")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("RATE_LIMIT_STORE")
	viper.BindEnv("LOGIN_RATE_LIMIT")
	viper.BindEnv("LOGIN_RATE_WINDOW_MIN")
	viper.BindEnv("EXECUTE_RATE_LIMIT")
	viper.BindEnv("EXECUTE_RATE_WINDOW_MIN")

	viper.SetDefault("PORT", ":8080")
	viper.SetDefault("JUDGE0_URL", "https://ce.judge0.com")
	viper.SetDefault("RATE_LIMIT_STORE", "redis")
	viper.SetDefault("LOGIN_RATE_LIMIT", 10)
	viper.SetDefault("LOGIN_RATE_WINDOW_MIN", 10)
	viper.SetDefault("EXECUTE_RATE_LIMIT", 30)
	viper.SetDefault("EXECUTE_RATE_WINDOW_MIN", 5)

	// Пытаемся прочитать файл, но не умираем, если его нет
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// Файла нет? Ну и ладно, работаем на ENV
	}

	err = viper.Unmarshal(&config)
	return
}
