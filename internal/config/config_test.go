package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

)

type testConfig struct {
	App  App    `mapstructure:"app"`
	Node string `mapstructure:"node" validate:"required,url"`
}

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaultsAndEnv() {
	s.T().Setenv("NODE", "https://node.example.com")
	s.T().Setenv("APP_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(&testConfig{}, func(v *viper.Viper) {
		v.SetDefault("node", "")
		Setup(v, "app")
	})
	s.Require().NoError(err)
	s.Equal("https://node.example.com", cfg.Node)
	s.Equal(3*time.Second, cfg.App.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestValidationFails() {
	_, err := Load(&testConfig{}, func(v *viper.Viper) {
		v.SetDefault("node", "not a url")
		Setup(v, "app")
	})
	s.ErrorIs(err, ErrInvalid)
	s.Contains(err.Error(), "testConfig.Node (url)")
}
