package entities

import "fmt"

// Sex - пол контакта.
type Sex string

// Допустимые значения пола.
const (
	Male   Sex = "Male"
	Female Sex = "Female"
)

// ErrUnknownSex возвращается для значения вне перечисления.
var ErrUnknownSex = fmt.Errorf("%w: sex must be Male or Female", ErrValidation)

// ParseSex разбирает строковое представление пола.
func ParseSex(value string) (Sex, error) {
	switch Sex(value) {
	case Male, Female:
		return Sex(value), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownSex, value)
	}
}

// String возвращает пол как обычную строку.
func (s Sex) String() string {
	return string(s)
}
