package infinity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// The server mixes strings, numbers and YES/NO markers for scalar fields; the
// types below accept every spelling seen on the wire.

func unquote(data []byte) string {
	s := string(bytes.TrimSpace(data))
	if uq, err := strconv.Unquote(s); err == nil {
		return uq
	}
	return s
}

func (v *VersionID) UnmarshalJSON(data []byte) error {
	s := unquote(data)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*v = VersionID(n)
	return nil
}

func (t *ServiceType) UnmarshalJSON(data []byte) error {
	switch st := ServiceType(strings.ToLower(unquote(data))); st {
	case ServiceTypeConnecting, ServiceTypeWaitingRoom, ServiceTypeIVR, ServiceTypeConference,
		ServiceTypeLecture, ServiceTypeGateway, ServiceTypeTestCall:
		*t = st
	default:
		*t = ServiceTypeUnknown
	}
	return nil
}

func (r *Role) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(unquote(data)) {
	case "chair", "host":
		*r = RoleHost
	case "guest":
		*r = RoleGuest
	default:
		*r = RoleUnknown
	}
	return nil
}

// Flag is a boolean encoded as true/false or "YES"/"NO".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(unquote(data)) {
	case "true", "yes":
		*f = true
	default:
		*f = false
	}
	return nil
}

// Seconds is a duration encoded as a (possibly quoted) number of seconds.
type Seconds time.Duration

func (s *Seconds) UnmarshalJSON(data []byte) error {
	v := unquote(data)
	if v == "" || v == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*s = Seconds(time.Duration(n * float64(time.Second)))
	return nil
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(time.Duration(s).Seconds(), 'f', -1, 64))
}

func (s Seconds) Duration() time.Duration {
	return time.Duration(s)
}

// UnixTime is a point in time encoded as unix seconds; zero or null means absent.
type UnixTime struct {
	time.Time
}

func (u *UnixTime) UnmarshalJSON(data []byte) error {
	v := unquote(data)
	if v == "" || v == "null" {
		u.Time = time.Time{}
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	if n <= 0 {
		u.Time = time.Time{}
		return nil
	}
	sec := int64(n)
	nsec := int64((n - float64(sec)) * float64(time.Second))
	u.Time = time.Unix(sec, nsec).UTC()
	return nil
}

// Ptr returns nil for an absent time.
func (u UnixTime) Ptr() *time.Time {
	if u.IsZero() {
		return nil
	}
	t := u.Time
	return &t
}

// OptionalUUID decodes null, "" and malformed values as uuid.Nil.
type OptionalUUID struct {
	uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	id, err := uuid.Parse(unquote(data))
	if err != nil {
		o.UUID = uuid.Nil
		return nil
	}
	o.UUID = id
	return nil
}
