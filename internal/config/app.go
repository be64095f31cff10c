package config

import (
	"time"

	"github.com/spf13/viper"
)

// App holds process-level settings. The env file is not part of it: it is
// loaded into the environment (APP_ENV_FILE, default .env) before viper reads it.
type App struct {
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("shutdown_timeout"), "10s")
}
