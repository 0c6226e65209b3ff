package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
)

func TestCreateContact(t *testing.T) {
	f := newFixture(t)

	w := f.do(jsonRequest(t, http.MethodPost, "/contact/create", dto.ContactRequest{
		Name:    "A",
		Email:   "a@b.com",
		Subject: "S",
		Message: "M",
	}))

	require.Equal(t, http.StatusCreated, w.Code)

	var saved entity.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.NotEqual(t, uuid.Nil, saved.ID, "saved record carries a generated id")
	assert.False(t, saved.CreatedAt.IsZero(), "saved record carries a timestamp")
	assert.Equal(t, "A", saved.Name)

	// The gated inbox now includes it.
	req := httptest.NewRequest(http.MethodGet, "/contact/all", nil)
	req.AddCookie(f.authCookie(t))
	lw := f.do(req)
	require.Equal(t, http.StatusOK, lw.Code)

	var contacts []entity.Contact
	require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, saved.ID, contacts[0].ID)
}

func TestCreateContact_MissingField(t *testing.T) {
	f := newFixture(t)

	w := f.do(jsonRequest(t, http.MethodPost, "/contact/create", dto.ContactRequest{
		Name:    "A",
		Email:   "a@b.com",
		Subject: "S",
	}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.contacts.contacts)
}

func TestGetContacts_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/contact/all", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
