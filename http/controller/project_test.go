package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
)

func TestCreateProject(t *testing.T) {
	f := newFixture(t)

	req := jsonRequest(t, http.MethodPost, "/project/add", dto.ProjectRequest{
		Title:       "Portfolio",
		Description: "Personal site",
		Category:    "web",
		Tech:        []string{"Go", "React"},
		Github:      "https://github.com/example/portfolio",
	})
	req.AddCookie(f.authCookie(t))
	w := f.do(req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, f.projects.projects, 1)

	var saved entity.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, "Portfolio", saved.Title)
	assert.Equal(t, []string{"Go", "React"}, []string(saved.Tech))
}

func TestCreateProject_MissingDescription(t *testing.T) {
	f := newFixture(t)

	req := jsonRequest(t, http.MethodPost, "/project/add", dto.ProjectRequest{Title: "Portfolio"})
	req.AddCookie(f.authCookie(t))
	w := f.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.projects.projects, "nothing should persist")
}

func TestCreateProject_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	w := f.do(jsonRequest(t, http.MethodPost, "/project/add", dto.ProjectRequest{
		Title:       "Portfolio",
		Description: "Personal site",
	}))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProjects_DefaultLimit(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		f.projects.projects = append(f.projects.projects, entity.Project{
			ID:          uuid.New(),
			Title:       "p",
			Description: "d",
			CreatedAt:   time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	w := f.do(httptest.NewRequest(http.MethodGet, "/project/all", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var projects []entity.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 3, "default limit is 3")

	w = f.do(httptest.NewRequest(http.MethodGet, "/project/all?limit=5", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 5)
}

func TestGetProjectByID(t *testing.T) {
	f := newFixture(t)
	p := entity.Project{ID: uuid.New(), Title: "p", Description: "d", CreatedAt: time.Now()}
	f.projects.projects = append(f.projects.projects, p)

	w := f.do(httptest.NewRequest(http.MethodGet, "/project/"+p.ID.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(httptest.NewRequest(http.MethodGet, "/project/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProject(t *testing.T) {
	f := newFixture(t)
	p := entity.Project{ID: uuid.New(), Title: "old", Description: "old", Category: "web", CreatedAt: time.Now()}
	f.projects.projects = append(f.projects.projects, p)

	req := jsonRequest(t, http.MethodPut, "/project/update/"+p.ID.String(), dto.ProjectRequest{
		Title:       "new",
		Description: "new desc",
		Category:    "cli",
		Tech:        []string{"Go"},
	})
	req.AddCookie(f.authCookie(t))
	w := f.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	updated, err := f.projects.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "cli", updated.Category)
}

func TestUpdateProject_RequiresCategory(t *testing.T) {
	f := newFixture(t)
	p := entity.Project{ID: uuid.New(), Title: "old", Description: "old", CreatedAt: time.Now()}
	f.projects.projects = append(f.projects.projects, p)

	req := jsonRequest(t, http.MethodPut, "/project/update/"+p.ID.String(), dto.ProjectRequest{
		Title:       "new",
		Description: "new desc",
	})
	req.AddCookie(f.authCookie(t))
	w := f.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	kept, err := f.projects.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "old", kept.Title)
}

func TestDeleteProject(t *testing.T) {
	f := newFixture(t)
	p := entity.Project{ID: uuid.New(), Title: "p", Description: "d", CreatedAt: time.Now()}
	f.projects.projects = append(f.projects.projects, p)

	req := httptest.NewRequest(http.MethodDelete, "/project/delete/"+p.ID.String(), nil)
	req.AddCookie(f.authCookie(t))
	w := f.do(req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, f.projects.projects)

	req = httptest.NewRequest(http.MethodDelete, "/project/delete/"+p.ID.String(), nil)
	req.AddCookie(f.authCookie(t))
	w = f.do(req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
