package entities

import "fmt"

// Границы допустимого возраста контакта.
const (
	MinAge = 18
	MaxAge = 120
)

// ErrAgeOutOfRange возвращается при попытке создать возраст вне допустимого диапазона.
var ErrAgeOutOfRange = fmt.Errorf("%w: age must be between %d and %d", ErrValidation, MinAge, MaxAge)

// Age - возраст контакта, проверенный при создании.
type Age int

// NewAge создает возраст. Допустимы значения от MinAge до MaxAge включительно.
func NewAge(value int) (Age, error) {
	if value < MinAge || value > MaxAge {
		return 0, fmt.Errorf("%w: got %d", ErrAgeOutOfRange, value)
	}
	return Age(value), nil
}

// Int возвращает возраст как обычное целое число.
func (a Age) Int() int {
	return int(a)
}
