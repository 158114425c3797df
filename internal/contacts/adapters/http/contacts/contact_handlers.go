// Package contacts содержит HTTP-обработчики для управления контактами.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"contactbook/internal/contacts/app"
	"contactbook/internal/contacts/app/dto"
	"contactbook/internal/contacts/domain/entities"
	"contactbook/internal/contacts/ports/services"
	"contactbook/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerListContacts   = "handling list contacts request"
	LogHandlerGetContact     = "handling get contact request"
	LogHandlerCreateContact  = "handling create contact request"
	LogHandlerUpdateContact  = "handling update contact request"
	LogHandlerDeleteContact  = "handling delete contact request"
	LogHandlerFilterContacts = "handling filter contacts request"

	ErrMsgInvalidContactID   = "invalid contact id"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Заголовки ответов при ошибках.
const (
	TitleBadRequest  = "Bad Request"
	TitleNotFound    = "Not Found"
	TitleServerError = "Internal Server Error"

	DetailServerError = "an unexpected error occurred"
)

// Handler обработчик HTTP-запросов для работы с контактами.
type Handler struct {
	contactService services.ContactService
}

// NewHandler создает новый экземпляр обработчика контактов.
func NewHandler(contactService services.ContactService) *Handler {
	return &Handler{
		contactService: contactService,
	}
}

// ListContacts обрабатывает запрос на получение всех контактов.
func (h *Handler) ListContacts(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.ListContacts"))
	log.Debug(reqCtx, LogHandlerListContacts)

	result, err := h.contactService.ListContacts(reqCtx)
	if err != nil {
		log.Error(reqCtx, "failed to list contacts", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(result); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetContact обрабатывает запрос на получение контакта по ID.
func (h *Handler) GetContact(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.GetContact"))
	log.Debug(reqCtx, LogHandlerGetContact)

	id, err := parseID(ctx)
	if err != nil {
		log.Error(reqCtx, ErrMsgInvalidContactID, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidContactID)
	}

	result, err := h.contactService.GetContact(reqCtx, id)
	if err != nil {
		log.Error(reqCtx, "failed to get contact", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(result); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// CreateContact обрабатывает запрос на создание контакта.
func (h *Handler) CreateContact(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.CreateContact"))
	log.Debug(reqCtx, LogHandlerCreateContact)

	var req dto.Contact
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	created, err := h.contactService.CreateContact(reqCtx, &req)
	if err != nil {
		log.Error(reqCtx, "failed to create contact", zap.Error(err))
		return handleError(ctx, err)
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("/api/contacts/%d", created.ID))
	if err := ctx.Status(fiber.StatusCreated).JSON(created); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateContact обрабатывает запрос на полную замену контакта.
// ID в пути обязан совпадать с ID в теле запроса.
func (h *Handler) UpdateContact(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.UpdateContact"))
	log.Debug(reqCtx, LogHandlerUpdateContact)

	id, err := parseID(ctx)
	if err != nil {
		log.Error(reqCtx, ErrMsgInvalidContactID, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidContactID)
	}

	var req dto.Contact
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(reqCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidRequestBody)
	}

	updated, err := h.contactService.UpdateContact(reqCtx, id, &req)
	if err != nil {
		log.Error(reqCtx, "failed to update contact", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(updated); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteContact обрабатывает запрос на удаление контакта.
func (h *Handler) DeleteContact(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.DeleteContact"))
	log.Debug(reqCtx, LogHandlerDeleteContact)

	id, err := parseID(ctx)
	if err != nil {
		log.Error(reqCtx, ErrMsgInvalidContactID, zap.Error(err))
		return badRequest(ctx, ErrMsgInvalidContactID)
	}

	if err := h.contactService.DeleteContact(reqCtx, id); err != nil {
		log.Error(reqCtx, "failed to delete contact", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusOK); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// FilterContacts обрабатывает запрос на поиск контактов по значению поля.
// Неизвестное имя поля дает пустой список, а не ошибку.
func (h *Handler) FilterContacts(ctx fiber.Ctx) error {
	reqCtx := requestContext(ctx)
	log := logger.Log(reqCtx).With(zap.String("handler", "Handler.FilterContacts"))
	log.Debug(reqCtx, LogHandlerFilterContacts)

	field := ctx.Params("field")
	value := ctx.Params("value")

	result, err := h.contactService.FilterContacts(reqCtx, field, value)
	if err != nil {
		log.Error(reqCtx, "failed to filter contacts", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.JSON(result); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requestContext возвращает контекст запроса, подготовленный middleware.
func requestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals("requestContext").(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

// parseID разбирает параметр пути :id.
func parseID(ctx fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return 0, fmt.Errorf("failed to parse contact id: %w", err)
	}
	return id, nil
}

// badRequest отправляет ответ 400 с телом problem-detail.
func badRequest(ctx fiber.Ctx, detail string) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(dto.Problem{
		Title:  TitleBadRequest,
		Detail: detail,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// handleError переводит ошибки бизнес-логики в HTTP-статусы:
// валидация и несовпадение ID дают 400, отсутствие контакта 404,
// все остальное обобщенный 500 без деталей для клиента.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, app.ErrNotFound):
		if err := ctx.Status(fiber.StatusNotFound).JSON(dto.Problem{
			Title:  TitleNotFound,
			Detail: "contact does not exist",
		}); err != nil {
			return fmt.Errorf("failed to send not found response: %w", err)
		}
		return nil
	case errors.Is(err, app.ErrIDMismatch):
		return badRequest(ctx, "path and body ids do not match")
	case errors.Is(err, entities.ErrValidation):
		return badRequest(ctx, err.Error())
	default:
		if err := ctx.Status(fiber.StatusInternalServerError).JSON(dto.Problem{
			Title:  TitleServerError,
			Detail: DetailServerError,
		}); err != nil {
			return fmt.Errorf("error sending 500 response: %w", err)
		}
		return nil
	}
}
