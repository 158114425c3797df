// Package app implements application business logic for the contacts service.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"contactbook/internal/contacts/app/dto"
	"contactbook/internal/contacts/domain/entities"
	"contactbook/internal/contacts/ports/cache"
	"contactbook/internal/contacts/ports/repositories"
	"contactbook/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNotFound   = errors.New("contact not found")
	ErrIDMismatch = errors.New("path and body ids do not match")
)

// fieldAccessors сопоставляет имя поля фильтра с функцией, возвращающей
// строковые значения этого поля. Набор полей закрыт и перечислим;
// неизвестное имя означает пустой результат, а не ошибку.
var fieldAccessors = map[string]func(*entities.Contact) []string{
	"Id":        func(c *entities.Contact) []string { return []string{strconv.Itoa(c.ID)} },
	"FirstName": func(c *entities.Contact) []string { return []string{c.FirstName} },
	"LastName":  func(c *entities.Contact) []string { return []string{c.LastName} },
	"Sex":       func(c *entities.Contact) []string { return []string{c.Sex.String()} },
	"Age":       func(c *entities.Contact) []string { return []string{strconv.Itoa(c.Age.Int())} },
	"Emails": func(c *entities.Contact) []string {
		values := make([]string, 0, len(c.Emails))
		for _, e := range c.Emails {
			values = append(values, e.String())
		}
		return values
	},
}

// ContactUseCase представляет собой бизнес-логику работы с контактами.
// Кэш необязателен: при nil все запросы идут напрямую в хранилище.
type ContactUseCase struct {
	contactRepo repositories.ContactRepository
	cache       cache.Cache
}

// NewContactUseCase создает новый экземпляр ContactUseCase.
func NewContactUseCase(contactRepo repositories.ContactRepository, contactCache cache.Cache) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		cache:       contactCache,
	}
}

// ListContacts возвращает все контакты в виде DTO.
func (uc *ContactUseCase) ListContacts(ctx context.Context) ([]*dto.Contact, error) {
	contacts, err := uc.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	result := make([]*dto.Contact, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, dto.ToDTO(c))
	}
	return result, nil
}

// GetContact возвращает контакт по ID, сначала проверяя кэш.
func (uc *ContactUseCase) GetContact(ctx context.Context, id int) (*dto.Contact, error) {
	if cached := uc.fromCache(ctx, id); cached != nil {
		return cached, nil
	}

	contact, err := uc.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact == nil {
		return nil, ErrNotFound
	}

	result := dto.ToDTO(contact)
	uc.toCache(ctx, result)
	return result, nil
}

// CreateContact проверяет DTO, создает контакт и возвращает его с присвоенным ID.
func (uc *ContactUseCase) CreateContact(ctx context.Context, d *dto.Contact) (*dto.Contact, error) {
	contact, err := dto.ToEntity(d)
	if err != nil {
		return nil, fmt.Errorf("invalid contact: %w", err)
	}

	id, err := uc.contactRepo.Insert(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	contact.ID = id

	return dto.ToDTO(contact), nil
}

// UpdateContact целиком заменяет контакт. ID в пути и в теле обязаны совпадать.
func (uc *ContactUseCase) UpdateContact(ctx context.Context, id int, d *dto.Contact) (*dto.Contact, error) {
	if id != d.ID {
		return nil, fmt.Errorf("%w: path %d, body %d", ErrIDMismatch, id, d.ID)
	}

	contact, err := dto.ToEntity(d)
	if err != nil {
		return nil, fmt.Errorf("invalid contact: %w", err)
	}

	existing, err := uc.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if err := uc.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	uc.invalidate(ctx, id)

	return dto.ToDTO(contact), nil
}

// DeleteContact удаляет контакт по ID.
func (uc *ContactUseCase) DeleteContact(ctx context.Context, id int) error {
	existing, err := uc.contactRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get contact: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := uc.contactRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	uc.invalidate(ctx, id)

	return nil
}

// FilterContacts возвращает контакты, у которых значение поля field содержит
// подстроку value. Сравнение чувствительно к регистру. Для поля Emails
// достаточно совпадения хотя бы по одному адресу.
func (uc *ContactUseCase) FilterContacts(ctx context.Context, field, value string) ([]*dto.Contact, error) {
	contacts, err := uc.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	result := make([]*dto.Contact, 0)
	accessor, ok := fieldAccessors[field]
	if !ok {
		return result, nil
	}

	for _, c := range contacts {
		for _, candidate := range accessor(c) {
			if strings.Contains(candidate, value) {
				result = append(result, dto.ToDTO(c))
				break
			}
		}
	}
	return result, nil
}

// cacheKey возвращает ключ кэша для контакта.
func cacheKey(id int) string {
	return "contact:" + strconv.Itoa(id)
}

// fromCache читает DTO из кэша. Любой сбой кэша не считается ошибкой запроса.
func (uc *ContactUseCase) fromCache(ctx context.Context, id int) *dto.Contact {
	if uc.cache == nil {
		return nil
	}
	log := logger.Log(ctx)

	raw, err := uc.cache.Get(ctx, cacheKey(id))
	if err != nil {
		log.Warn(ctx, "cache get failed", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}

	var cached dto.Contact
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		log.Warn(ctx, "cache entry is not valid json", zap.Error(err))
		return nil
	}
	return &cached
}

// toCache сохраняет DTO в кэш с TTL по умолчанию.
func (uc *ContactUseCase) toCache(ctx context.Context, d *dto.Contact) {
	if uc.cache == nil {
		return
	}
	log := logger.Log(ctx)

	raw, err := json.Marshal(d)
	if err != nil {
		log.Warn(ctx, "failed to marshal contact for cache", zap.Error(err))
		return
	}
	if err := uc.cache.Set(ctx, cacheKey(d.ID), string(raw), 0); err != nil {
		log.Warn(ctx, "cache set failed", zap.Error(err))
	}
}

// invalidate сбрасывает кэшированную запись после мутации.
func (uc *ContactUseCase) invalidate(ctx context.Context, id int) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Delete(ctx, cacheKey(id)); err != nil {
		logger.Log(ctx).Warn(ctx, "cache delete failed", zap.Error(err))
	}
}
