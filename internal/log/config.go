package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var (
	envFunc = env
)

// Config selects how the root logger is built.
type Config struct {
	// ConfigFile points at a JSON zap.Config; empty means the console logger.
	ConfigFile string `mapstructure:"config_file"`
	// Level is the fallback level when LOG_LEVEL is not set.
	Level string `mapstructure:"level"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("config_file"), "")
	v.SetDefault(p("level"), "info")
}

func parseLevel(s string) (zapcore.Level, bool) {
	var lvl zapcore.Level
	err := lvl.Set(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

func env(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func parseLevelFromEnv(key string) (zapcore.Level, bool) {
	v, ok := envFunc(key)
	if !ok {
		return zapcore.InfoLevel, false
	}
	return parseLevel(v)
}

// moduleLevel walks LOG_LEVEL__A__B__C, LOG_LEVEL__A__B, LOG_LEVEL__A, LOG_LEVEL
// and returns the first level that parses, or fallback.
func moduleLevel(names []string, fallback zapcore.Level) zapcore.Level {
	skNames := make([]string, len(names))
	for i, n := range names {
		skNames[i] = strcase.ToScreamingSnake(n)
	}

	keys := []string{}
	for i := len(skNames); i > 0; i-- {
		keys = append(keys, fmt.Sprintf("LOG_LEVEL__%s", strings.Join(skNames[:i], "__")))
	}
	keys = append(keys, "LOG_LEVEL")

	for _, k := range keys {
		if lv, ok := parseLevelFromEnv(k); ok {
			return lv
		}
	}

	return fallback
}
