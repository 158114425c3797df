// Package entities defines the domain entities for the contacts service.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки валидации контакта.
var (
	// ErrValidation - общий признак всех ошибок валидации доменных объектов.
	ErrValidation = errors.New("contact validation failed")

	ErrBlankFirstName = fmt.Errorf("%w: first name must not be blank", ErrValidation)
	ErrBlankLastName  = fmt.Errorf("%w: last name must not be blank", ErrValidation)
	ErrNilEmails      = fmt.Errorf("%w: emails must not be nil", ErrValidation)
)

// Contact - агрегат контакта. Создается только через NewContact и после
// создания не изменяется, замена возможна только целиком.
type Contact struct {
	ID        int
	FirstName string
	LastName  string
	Sex       Sex
	Emails    []Email
	Age       Age
}

// NewContact создает контакт, проверяя обязательные поля.
// Имя и фамилия не могут быть пустыми или состоять из пробелов.
func NewContact(id int, firstName, lastName string, sex Sex, emails []Email, age Age) (*Contact, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, ErrBlankFirstName
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, ErrBlankLastName
	}
	if emails == nil {
		return nil, ErrNilEmails
	}

	return &Contact{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Sex:       sex,
		Emails:    emails,
		Age:       age,
	}, nil
}
