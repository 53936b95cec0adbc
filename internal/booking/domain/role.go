package domain

import (
	"errors"
	"strings"
)

// Role is the closed set of account kinds.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// ErrUnknownRole is returned by ParseRole for anything outside the set.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole maps a stored or claimed role string onto Role.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) String() string { return string(r) }
