// Package repositories defines repository interfaces for the contacts service.
package repositories

import (
	"context"

	"contactbook/internal/contacts/domain/entities"
)

// ContactRepository определяет интерфейс для работы с хранилищем контактов.
// FindByID возвращает (nil, nil), если контакт отсутствует.
type ContactRepository interface {
	ListAll(ctx context.Context) ([]*entities.Contact, error)
	FindByID(ctx context.Context, id int) (*entities.Contact, error)
	Insert(ctx context.Context, contact *entities.Contact) (int, error)
	Update(ctx context.Context, contact *entities.Contact) error
	Delete(ctx context.Context, id int) error
}
