package contacts_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpServer "contactbook/internal/contacts/adapters/http"
	"contactbook/internal/contacts/adapters/memory"
	"contactbook/internal/contacts/app"
	"contactbook/internal/contacts/app/dto"
	"contactbook/internal/contacts/config"
	"contactbook/internal/contacts/seed"
)

// newTestApp поднимает приложение с тремя демонстрационными контактами.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	repo := memory.NewContactRepository()
	require.NoError(t, seed.Demo(context.Background(), repo))

	fiberApp := fiber.New()
	httpServer.SetupRouter(fiberApp, &config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Content-Type"},
	}, app.NewContactUseCase(repo, nil))

	return fiberApp
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, target string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeContacts(t *testing.T, resp *http.Response) []dto.Contact {
	t.Helper()
	var result []dto.Contact
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func decodeContact(t *testing.T, resp *http.Response) dto.Contact {
	t.Helper()
	var result dto.Contact
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func decodeProblem(t *testing.T, resp *http.Response) dto.Problem {
	t.Helper()
	var problem dto.Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&problem))
	return problem
}

func TestListContacts(t *testing.T) {
	fiberApp := newTestApp(t)

	resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	contacts := decodeContacts(t, resp)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Kot", contacts[0].LastName)
	assert.Equal(t, "Nowak", contacts[1].LastName)
	assert.Equal(t, "Adamski", contacts[2].LastName)
}

func TestGetContact(t *testing.T) {
	fiberApp := newTestApp(t)

	t.Run("existing contact", func(t *testing.T) {
		resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/1", nil)

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		contact := decodeContact(t, resp)
		assert.Equal(t, 1, contact.ID)
		assert.Equal(t, "Ala", contact.FirstName)
		assert.Equal(t, []string{"ala.kot@gmail.com", "ala.kot@wp.pl"}, contact.Emails)
	})

	t.Run("missing contact", func(t *testing.T) {
		resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/99", nil)

		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		problem := decodeProblem(t, resp)
		assert.Equal(t, "Not Found", problem.Title)
		assert.NotEmpty(t, problem.Detail)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/abc", nil)

		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateContact(t *testing.T) {
	t.Run("valid contact", func(t *testing.T) {
		fiberApp := newTestApp(t)
		payload := dto.Contact{
			FirstName: "Jan",
			LastName:  "Kowalski",
			Sex:       "Male",
			Emails:    []string{"jan.kowalski@gmail.com"},
			Age:       28,
		}

		resp := doJSON(t, fiberApp, http.MethodPost, "/api/contacts/", payload)

		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		created := decodeContact(t, resp)
		assert.Equal(t, 4, created.ID)
		assert.Equal(t, fmt.Sprintf("/api/contacts/%d", created.ID), resp.Header.Get(fiber.HeaderLocation))

		// Созданный контакт читается обратно.
		resp = doJSON(t, fiberApp, http.MethodGet, fmt.Sprintf("/api/contacts/%d", created.ID), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Kowalski", decodeContact(t, resp).LastName)
	})

	t.Run("age below threshold", func(t *testing.T) {
		fiberApp := newTestApp(t)
		payload := dto.Contact{
			FirstName: "Jan",
			LastName:  "Kowalski",
			Sex:       "Male",
			Emails:    []string{},
			Age:       17,
		}

		resp := doJSON(t, fiberApp, http.MethodPost, "/api/contacts/", payload)

		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		problem := decodeProblem(t, resp)
		assert.Equal(t, "Bad Request", problem.Title)
	})

	t.Run("blank last name", func(t *testing.T) {
		fiberApp := newTestApp(t)
		payload := dto.Contact{
			FirstName: "Jan",
			LastName:  "  ",
			Sex:       "Male",
			Emails:    []string{},
			Age:       28,
		}

		resp := doJSON(t, fiberApp, http.MethodPost, "/api/contacts/", payload)

		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		fiberApp := newTestApp(t)
		req := httptest.NewRequest(http.MethodPost, "/api/contacts/", bytes.NewReader([]byte("{not json")))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := fiberApp.Test(req)
		require.NoError(t, err)

		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateContact(t *testing.T) {
	t.Run("replaces the contact", func(t *testing.T) {
		fiberApp := newTestApp(t)
		payload := dto.Contact{
			ID:        2,
			FirstName: "Tomasz",
			LastName:  "Nowak",
			Sex:       "Male",
			Emails:    []string{"t.nowak@gmail.com"},
			Age:       36,
		}

		resp := doJSON(t, fiberApp, http.MethodPut, "/api/contacts/2", payload)

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		updated := decodeContact(t, resp)
		assert.Equal(t, 36, updated.Age)
		assert.Equal(t, []string{"t.nowak@gmail.com"}, updated.Emails)
	})

	t.Run("path and body id mismatch leaves state unchanged", func(t *testing.T) {
		fiberApp := newTestApp(t)
		payload := dto.Contact{
			ID:        2,
			FirstName: "Inny",
			LastName:  "Czlowiek",
			Sex:       "Male",
			Emails:    []string{},
			Age:       50,
		}

		resp := doJSON(t, fiberApp, http.MethodPut, "/api/contacts/1", payload)

		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		resp = doJSON(t, fiberApp, http.MethodGet, "/api/contacts/1", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Ala", decodeContact(t, resp).FirstName)
	})

	t.Run("missing contact", func(t *testing.T) {
		fiberApp := newTestApp(t)
		payload := dto.Contact{
			ID:        77,
			FirstName: "Jan",
			LastName:  "Kowalski",
			Sex:       "Male",
			Emails:    []string{},
			Age:       28,
		}

		resp := doJSON(t, fiberApp, http.MethodPut, "/api/contacts/77", payload)

		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteContact(t *testing.T) {
	fiberApp := newTestApp(t)

	resp := doJSON(t, fiberApp, http.MethodDelete, "/api/contacts/3", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Повторное удаление того же контакта дает 404.
	resp = doJSON(t, fiberApp, http.MethodDelete, "/api/contacts/3", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, fiberApp, http.MethodGet, "/api/contacts/3", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFilterContacts(t *testing.T) {
	fiberApp := newTestApp(t)

	t.Run("single match by last name", func(t *testing.T) {
		resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/filter/LastName/Nowak", nil)

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		contacts := decodeContacts(t, resp)
		require.Len(t, contacts, 1)
		assert.Equal(t, "Tomasz", contacts[0].FirstName)
	})

	t.Run("gmail addresses", func(t *testing.T) {
		resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/filter/Emails/gmail.com", nil)

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		contacts := decodeContacts(t, resp)
		require.Len(t, contacts, 2)
		assert.Equal(t, "Kot", contacts[0].LastName)
		assert.Equal(t, "Adamski", contacts[1].LastName)
	})

	t.Run("unknown field yields empty list", func(t *testing.T) {
		resp := doJSON(t, fiberApp, http.MethodGet, "/api/contacts/filter/Nickname/x", nil)

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, decodeContacts(t, resp))
	})
}

func TestDemoRoutes(t *testing.T) {
	fiberApp := newTestApp(t)

	resp := doJSON(t, fiberApp, http.MethodGet, "/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Contacts API", string(body))

	resp = doJSON(t, fiberApp, http.MethodGet, "/5/Jan", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Hello Jan, id 5", string(body))
}

func TestUnknownRoute(t *testing.T) {
	fiberApp := newTestApp(t)

	resp := doJSON(t, fiberApp, http.MethodGet, "/api/unknown/route/here", nil)

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	problem := decodeProblem(t, resp)
	assert.Equal(t, "Not Found", problem.Title)
}
