// Package services определяет интерфейсы прикладных сервисов.
package services

import (
	"context"

	"contactbook/internal/contacts/app/dto"
)

// ContactService определяет операции над контактами, доступные HTTP-слою.
type ContactService interface {
	ListContacts(ctx context.Context) ([]*dto.Contact, error)
	GetContact(ctx context.Context, id int) (*dto.Contact, error)
	CreateContact(ctx context.Context, contact *dto.Contact) (*dto.Contact, error)
	UpdateContact(ctx context.Context, id int, contact *dto.Contact) (*dto.Contact, error)
	DeleteContact(ctx context.Context, id int) error
	FilterContacts(ctx context.Context, field, value string) ([]*dto.Contact, error)
}
