package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Conference aliases are URI user parts: no whitespace or path/query separators.
var aliasRegex = regexp.MustCompile(`^[^\s/?#]{1,255}$`)

// New returns a validator with the session tags registered:
//
//	alias   conference alias usable as a URL path segment
//	nodeurl http(s) URL of a conferencing node
//	pin     optional PIN of printable ASCII
func New() *validator.Validate {
	v := validator.New()
	MustRegister(v, "alias", ValidateAlias)
	RegisterAlias(v, "nodeurl", "http_url")
	RegisterAlias(v, "pin", "omitempty,printascii,max=64")
	return v
}

func ValidateAlias(fl validator.FieldLevel) bool {
	return aliasRegex.MatchString(fl.Field().String())
}

func MustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := Register(v, tag, fn); err != nil {
		panic(err)
	}
}

func Register(v *validator.Validate, tag string, fn validator.Func) error {
	return v.RegisterValidation(tag, fn)
}

func RegisterAlias(v *validator.Validate, tag string, alias string) {
	v.RegisterAlias(tag, alias)
}
