package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/validation"
)

const ErrInvalid errors.Code = "invalid configuration"

var validate = validation.New()

func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	return v
}

// Load applies configure to a fresh env-bound viper, unmarshals into c and
// validates the result against its `validate` tags.
func Load[T any](c *T, configure func(v *viper.Viper)) (*T, error) {
	v := NewViper()

	configure(v)
	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if err := validate.Struct(c); err != nil {
		return nil, errors.Wrap(ErrInvalid, err, validation.Summary(err))
	}
	return c, nil
}
