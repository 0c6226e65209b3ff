package repository

import (
	"github.com/minaamulhaq/updatedPortfolowithbackend/infra"
)

// Repository aggregates one store per record collection. Fields are
// interfaces so handler tests can substitute in-memory fakes.
type Repository struct {
	UserRepo    UserRepository
	CVRepo      CVRepository
	ProjectRepo ProjectRepository
	SkillRepo   SkillRepository
	ContactRepo ContactRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		UserRepo:    NewUserRepository(infra.Postgres.DB),
		CVRepo:      NewCVRepository(infra.Postgres.DB),
		ProjectRepo: NewProjectRepository(infra.Postgres.DB),
		SkillRepo:   NewSkillRepository(infra.Postgres.DB),
		ContactRepo: NewContactRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}
