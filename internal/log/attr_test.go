package log

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AttrTestSuite struct {
	suite.Suite
}

func TestAttrSuite(t *testing.T) {
	suite.Run(t, new(AttrTestSuite))
}

func (s *AttrTestSuite) TestSecretRedacts() {
	f := Secret("token", "abcdefghijklmnop")
	s.Equal("token", f.Key)
	s.Equal("abcd***(16)", f.String)
}

func (s *AttrTestSuite) TestSecretShortValue() {
	s.Equal("***(5)", Secret("pin", "12345").String)
	s.Equal("***(0)", Secret("pin", "").String)
}
