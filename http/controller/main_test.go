package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/config"
	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller"
	routes "github.com/minaamulhaq/updatedPortfolowithbackend/http/route"
	"github.com/minaamulhaq/updatedPortfolowithbackend/infra"
	"github.com/minaamulhaq/updatedPortfolowithbackend/repository"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

const adminPassword = "secret123"

type fixture struct {
	router    *gin.Engine
	env       *config.EnvConfig
	admin     *entity.User
	users     *fakeUserRepo
	cvs       *fakeCVRepo
	projects  *fakeProjectRepo
	skills    *fakeSkillRepo
	contacts  *fakeContactRepo
	media     *fakeMedia
	blocklist *fakeBlocklist
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &config.EnvConfig{}
	env.JWT.SecretKey = "test-secret"
	env.JWT.Expire = 3600
	env.CORS.AllowDomains = "http://localhost:3000"
	env.Environment.Mode = "development"

	hash, err := utils.HashPassword(adminPassword)
	require.NoError(t, err)
	admin := &entity.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	f := &fixture{
		env:       env,
		admin:     admin,
		users:     &fakeUserRepo{users: []*entity.User{admin}},
		cvs:       &fakeCVRepo{},
		projects:  &fakeProjectRepo{},
		skills:    &fakeSkillRepo{},
		contacts:  &fakeContactRepo{},
		media:     &fakeMedia{},
		blocklist: &fakeBlocklist{revoked: map[string]bool{}},
	}

	ctrl := controller.NewController(
		&config.Config{EnvConfig: env},
		&infra.Infra{
			Logger:    infra.NewTestLogger(),
			Media:     f.media,
			Blocklist: f.blocklist,
		},
		&repository.Repository{
			UserRepo:    f.users,
			CVRepo:      f.cvs,
			ProjectRepo: f.projects,
			SkillRepo:   f.skills,
			ContactRepo: f.contacts,
		},
	)

	f.router = routes.SetupRouter(ctrl)
	return f
}

func (f *fixture) authCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(f.admin.ID, f.env)
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- fakes ---

type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeCVRepo struct {
	cvs       []entity.CV
	createErr error
	deleteErr error
}

func (r *fakeCVRepo) Create(cv *entity.CV) error {
	if r.createErr != nil {
		return r.createErr
	}
	if cv.ID == uuid.Nil {
		cv.ID = uuid.New()
	}
	if cv.CreatedAt.IsZero() {
		cv.CreatedAt = time.Now()
	}
	r.cvs = append(r.cvs, *cv)
	return nil
}

func (r *fakeCVRepo) FindByID(id uuid.UUID) (*entity.CV, error) {
	for i := range r.cvs {
		if r.cvs[i].ID == id {
			cv := r.cvs[i]
			return &cv, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCVRepo) FindLatest() (*entity.CV, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &all[0], nil
}

func (r *fakeCVRepo) FindAll() ([]entity.CV, error) {
	out := make([]entity.CV, len(r.cvs))
	copy(out, r.cvs)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCVRepo) Delete(id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i := range r.cvs {
		if r.cvs[i].ID == id {
			r.cvs = append(r.cvs[:i], r.cvs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProjectRepo struct {
	projects []entity.Project
}

func (r *fakeProjectRepo) Create(project *entity.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}
	r.projects = append(r.projects, *project)
	return nil
}

func (r *fakeProjectRepo) FindAll(limit int) ([]entity.Project, error) {
	out := make([]entity.Project, len(r.projects))
	copy(out, r.projects)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeProjectRepo) FindByID(id uuid.UUID) (*entity.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProjectRepo) Save(project *entity.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == project.ID {
			r.projects[i] = *project
			return nil
		}
	}
	r.projects = append(r.projects, *project)
	return nil
}

func (r *fakeProjectRepo) Delete(id uuid.UUID) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeSkillRepo struct {
	skills []entity.Skill
}

func (r *fakeSkillRepo) Create(skill *entity.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	if skill.CreatedAt.IsZero() {
		skill.CreatedAt = time.Now()
	}
	r.skills = append(r.skills, *skill)
	return nil
}

func (r *fakeSkillRepo) FindAll() ([]entity.Skill, error) {
	out := make([]entity.Skill, len(r.skills))
	copy(out, r.skills)
	return out, nil
}

func (r *fakeSkillRepo) FindByID(id uuid.UUID) (*entity.Skill, error) {
	for i := range r.skills {
		if r.skills[i].ID == id {
			s := r.skills[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSkillRepo) Save(skill *entity.Skill) error {
	for i := range r.skills {
		if r.skills[i].ID == skill.ID {
			r.skills[i] = *skill
			return nil
		}
	}
	r.skills = append(r.skills, *skill)
	return nil
}

type fakeContactRepo struct {
	contacts []entity.Contact
}

func (r *fakeContactRepo) Create(contact *entity.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	r.contacts = append(r.contacts, *contact)
	return nil
}

func (r *fakeContactRepo) FindAll() ([]entity.Contact, error) {
	out := make([]entity.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

type fakeMedia struct {
	storeErr  error
	deleteErr error
	signErr   error
	stored    []infra.StoredAsset
	deleted   []string
}

func (m *fakeMedia) Store(ctx context.Context, r io.Reader, size int64, filename, contentType string) (*infra.StoredAsset, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}
	asset := infra.StoredAsset{
		FileURL:   fmt.Sprintf("http://media.local/portfolio/cv/%d-%s", len(m.stored), filename),
		StorageID: fmt.Sprintf("cv/%d-%s", len(m.stored), filename),
		AssetID:   fmt.Sprintf("etag-%d", len(m.stored)),
	}
	m.stored = append(m.stored, asset)
	return &asset, nil
}

func (m *fakeMedia) Delete(ctx context.Context, storageID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, storageID)
	return nil
}

func (m *fakeMedia) SignedDownloadURL(ctx context.Context, storageID, filename string) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}
	return "http://media.local/signed/" + storageID + "?sig=test", nil
}

type fakeBlocklist struct {
	revoked map[string]bool
	err     error
}

func (b *fakeBlocklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if b.err != nil {
		return b.err
	}
	if ttl > 0 {
		b.revoked[tokenID] = true
	}
	return nil
}

func (b *fakeBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if b.err != nil {
		return false, b.err
	}
	return b.revoked[tokenID], nil
}
