// Package dto содержит плоские представления контактов для обмена по HTTP.
package dto

import (
	"contactbook/internal/contacts/domain/entities"
)

// Contact - представление контакта на проводе: адреса и возраст
// передаются как обычные строки и число.
type Contact struct {
	ID        int      `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Sex       string   `json:"sex"`
	Emails    []string `json:"emails"`
	Age       int      `json:"age"`
}

// Problem - тело ответа при ошибке.
type Problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ToEntity создает доменный контакт из DTO. Здесь выполняется
// валидация возраста, пола и имен; ошибки пробрасываются вызывающему.
func ToEntity(d *Contact) (*entities.Contact, error) {
	age, err := entities.NewAge(d.Age)
	if err != nil {
		return nil, err
	}

	sex, err := entities.ParseSex(d.Sex)
	if err != nil {
		return nil, err
	}

	var emails []entities.Email
	if d.Emails != nil {
		emails = make([]entities.Email, 0, len(d.Emails))
		for _, e := range d.Emails {
			emails = append(emails, entities.NewEmail(e))
		}
	}

	return entities.NewContact(d.ID, d.FirstName, d.LastName, sex, emails, age)
}

// ToDTO проецирует доменный контакт в DTO. Никогда не завершается ошибкой.
func ToDTO(c *entities.Contact) *Contact {
	emails := make([]string, 0, len(c.Emails))
	for _, e := range c.Emails {
		emails = append(emails, e.String())
	}

	return &Contact{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Sex:       c.Sex.String(),
		Emails:    emails,
		Age:       c.Age.Int(),
	}
}
