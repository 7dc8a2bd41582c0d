package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string
		Build    string

		RollbarToken string

		Backend  BackendConfig
		Feedback FeedbackConfig

		// SessionDBPath is where the persisted session lives across restarts.
		SessionDBPath string
	}

	BackendConfig struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	FeedbackConfig struct {
		URL            string
		APIKey         string
		RequestTimeout time.Duration
	}
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "LAVA")
	conf.SetDefault("build", "dev")
	conf.SetDefault("backendBaseUrl", "http://localhost:8000")
	conf.SetDefault("backendRequestTimeout", 15*time.Second)
	conf.SetDefault("feedbackUrl", "")
	conf.SetDefault("feedbackApiKey", "")
	conf.SetDefault("feedbackRequestTimeout", 30*time.Second)
	conf.SetDefault("sessionDbPath", filepath.Join(userConfigDir(), "lava", "session.db"))

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		RollbarToken: conf.GetString("rollbarToken"),
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(conf.GetString("backendBaseUrl"), "/"),
			RequestTimeout: conf.GetDuration("backendRequestTimeout"),
		},
		Feedback: FeedbackConfig{
			URL:            conf.GetString("feedbackUrl"),
			APIKey:         conf.GetString("feedbackApiKey"),
			RequestTimeout: conf.GetDuration("feedbackRequestTimeout"),
		},
		SessionDBPath: conf.GetString("sessionDbPath"),
	}
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}
