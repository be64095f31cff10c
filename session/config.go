package session

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	NodeURL             string `mapstructure:"node_url" validate:"required,nodeurl"`
	Alias               string `mapstructure:"alias" validate:"required,alias"`
	DisplayName         string `mapstructure:"display_name" validate:"required"`
	Pin                 string `mapstructure:"pin" validate:"pin"`
	ConferenceExtension string `mapstructure:"conference_extension"`
	CallTag             string `mapstructure:"call_tag"`

	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ReleaseTimeout time.Duration `mapstructure:"release_timeout" validate:"gt=0"`
	EventBuffer    int           `mapstructure:"event_buffer" validate:"gte=0"`

	// Zero RestartInitialInterval reopens the event stream immediately.
	RestartInitialInterval time.Duration `mapstructure:"restart_initial_interval" validate:"gte=0"`
	RestartMaxInterval     time.Duration `mapstructure:"restart_max_interval" validate:"gte=0"`
}

func Setup(v *viper.Viper, prefix string) {
	p := func(key string) string { return prefix + "." + key }

	v.SetDefault(p("node_url"), "")
	v.SetDefault(p("alias"), "")
	v.SetDefault(p("display_name"), "")
	v.SetDefault(p("pin"), "")
	v.SetDefault(p("conference_extension"), "")
	v.SetDefault(p("call_tag"), "")
	v.SetDefault(p("request_timeout"), "10s")
	v.SetDefault(p("release_timeout"), "5s")
	v.SetDefault(p("event_buffer"), 64)
	v.SetDefault(p("restart_initial_interval"), "0s")
	v.SetDefault(p("restart_max_interval"), "30s")
}
