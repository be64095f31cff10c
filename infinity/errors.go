package infinity

import "github.com/imtaco/infinity-session/internal/errors"

const (
	ErrFailedRequest    errors.Code = "fail to make request"
	ErrInvalidResponse  errors.Code = "invalid response"
	ErrInvalidToken     errors.Code = "invalid token"
	ErrNoSuchConference errors.Code = "no such conference"
	ErrNoSuchNode       errors.Code = "no such node"
	ErrIllegalState     errors.Code = "illegal state"
)
