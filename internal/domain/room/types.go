package room

import (
	"errors"
	"strings"
)

var ErrInvalidType = errors.New("invalid room type")

// Type is the fixed room category shared by a pricing tier and amenity set.
type Type string

const (
	TypeStandard Type = "standard"
	TypeDeluxe   Type = "deluxe"
	TypeSuite    Type = "suite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
