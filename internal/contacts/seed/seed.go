// Package seed наполняет хранилище демонстрационными контактами.
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"contactbook/internal/contacts/domain/entities"
	"contactbook/internal/contacts/ports/repositories"
	"contactbook/pkg/logger"
)

// demoContact описывает один демонстрационный контакт.
type demoContact struct {
	firstName string
	lastName  string
	sex       entities.Sex
	emails    []string
	age       int
}

// Демонстрационные данные для режима разработки.
var demoContacts = []demoContact{
	{"Ala", "Kot", entities.Female, []string{"ala.kot@gmail.com", "ala.kot@wp.pl"}, 30},
	{"Tomasz", "Nowak", entities.Male, []string{"tomasz.nowak@onet.pl"}, 35},
	{"Cezary", "Adamski", entities.Male, []string{"cezary.adamski@gmail.com"}, 44},
}

// Demo вставляет фиксированный набор контактов в хранилище.
func Demo(ctx context.Context, repo repositories.ContactRepository) error {
	log := logger.Log(ctx)

	for _, d := range demoContacts {
		age, err := entities.NewAge(d.age)
		if err != nil {
			return fmt.Errorf("invalid demo contact %s %s: %w", d.firstName, d.lastName, err)
		}

		emails := make([]entities.Email, 0, len(d.emails))
		for _, e := range d.emails {
			emails = append(emails, entities.NewEmail(e))
		}

		contact, err := entities.NewContact(0, d.firstName, d.lastName, d.sex, emails, age)
		if err != nil {
			return fmt.Errorf("invalid demo contact %s %s: %w", d.firstName, d.lastName, err)
		}

		id, err := repo.Insert(ctx, contact)
		if err != nil {
			return fmt.Errorf("failed to seed contact %s %s: %w", d.firstName, d.lastName, err)
		}
		log.Debug(ctx, "seeded demo contact", zap.Int("contactID", id))
	}

	log.Info(ctx, "demo contacts seeded", zap.Int("count", len(demoContacts)))
	return nil
}
