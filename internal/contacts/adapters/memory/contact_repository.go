// Package memory provides an in-memory implementation of the contacts repository.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"contactbook/internal/contacts/domain/entities"
	"contactbook/internal/contacts/ports/repositories"
	"contactbook/pkg/logger"
)

// Ошибки хранилища.
var (
	// ErrContactNotFound возвращается из Update и Delete для отсутствующего ID.
	ErrContactNotFound = errors.New("contact not found")
	// ErrIDTaken возвращается из Insert, когда переданный ID уже занят.
	ErrIDTaken = errors.New("contact id already taken")
)

// ContactRepository реализует repositories.ContactRepository поверх map.
// Хранилище энергозависимое: содержимое теряется при перезапуске процесса.
// Мутации сериализуются мьютексом, потому что fiber обрабатывает запросы
// конкурентно.
type ContactRepository struct {
	mu       sync.RWMutex
	contacts map[int]*entities.Contact
	nextID   int
}

// NewContactRepository создает пустое хранилище контактов.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		contacts: make(map[int]*entities.Contact),
		nextID:   1,
	}
}

// ListAll возвращает все контакты, упорядоченные по ID.
func (r *ContactRepository) ListAll(ctx context.Context) ([]*entities.Contact, error) {
	log := logger.Log(ctx).With(zap.String("method", "ContactRepository.ListAll"))

	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*entities.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contacts = append(contacts, clone(c))
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })

	log.Debug(ctx, "listed contacts", zap.Int("count", len(contacts)))
	return contacts, nil
}

// FindByID возвращает контакт по ID или (nil, nil), если его нет.
func (r *ContactRepository) FindByID(ctx context.Context, id int) (*entities.Contact, error) {
	log := logger.Log(ctx).With(zap.String("method", "ContactRepository.FindByID"))

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contacts[id]
	if !ok {
		log.Debug(ctx, "contact not found", zap.Int("contactID", id))
		return nil, nil
	}
	return clone(c), nil
}

// Insert сохраняет новый контакт. Нулевой ID заменяется следующим значением
// последовательности, ненулевой свободный ID сохраняется как есть.
func (r *ContactRepository) Insert(ctx context.Context, contact *entities.Contact) (int, error) {
	log := logger.Log(ctx).With(zap.String("method", "ContactRepository.Insert"))

	r.mu.Lock()
	defer r.mu.Unlock()

	id := contact.ID
	if id == 0 {
		id = r.nextID
	} else if _, taken := r.contacts[id]; taken {
		log.Error(ctx, "contact id already taken", zap.Int("contactID", id))
		return 0, fmt.Errorf("failed to insert contact %d: %w", id, ErrIDTaken)
	}

	stored := clone(contact)
	stored.ID = id
	r.contacts[id] = stored
	if id >= r.nextID {
		r.nextID = id + 1
	}

	log.Debug(ctx, "contact inserted", zap.Int("contactID", id))
	return id, nil
}

// Update целиком заменяет сохраненный контакт с тем же ID.
func (r *ContactRepository) Update(ctx context.Context, contact *entities.Contact) error {
	log := logger.Log(ctx).With(zap.String("method", "ContactRepository.Update"))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[contact.ID]; !ok {
		log.Debug(ctx, "contact not found", zap.Int("contactID", contact.ID))
		return fmt.Errorf("failed to update contact %d: %w", contact.ID, ErrContactNotFound)
	}

	r.contacts[contact.ID] = clone(contact)
	log.Debug(ctx, "contact updated", zap.Int("contactID", contact.ID))
	return nil
}

// Delete удаляет контакт по ID.
func (r *ContactRepository) Delete(ctx context.Context, id int) error {
	log := logger.Log(ctx).With(zap.String("method", "ContactRepository.Delete"))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		log.Debug(ctx, "contact not found", zap.Int("contactID", id))
		return fmt.Errorf("failed to delete contact %d: %w", id, ErrContactNotFound)
	}

	delete(r.contacts, id)
	log.Debug(ctx, "contact deleted", zap.Int("contactID", id))
	return nil
}

// clone копирует контакт вместе со списком адресов, чтобы хранилище
// не делило изменяемое состояние с вызывающими.
func clone(c *entities.Contact) *entities.Contact {
	copied := *c
	copied.Emails = make([]entities.Email, len(c.Emails))
	copy(copied.Emails, c.Emails)
	return &copied
}

// Компиляционная проверка соответствия интерфейсу.
var _ repositories.ContactRepository = (*ContactRepository)(nil)
