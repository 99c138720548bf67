package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/hoangtran/portfolio-api/internal/domain/about"
	"github.com/hoangtran/portfolio-api/internal/domain/contact"
	"github.com/hoangtran/portfolio-api/internal/domain/experience"
	"github.com/hoangtran/portfolio-api/internal/domain/project"
	"github.com/hoangtran/portfolio-api/internal/domain/skill"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type ContentRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool         *pgxpool.Pool
	pgContainer    *postgres.PostgresContainer
	testLogger     logger.Logger
	projectRepo    project.Repository
	experienceRepo experience.Repository
	skillRepo      skill.Repository
	aboutRepo      about.Repository
	contactRepo    contact.Repository
}

func (s *ContentRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.experienceRepo = NewPostgresExperienceRepo(s.dbPool, s.testLogger)
	s.skillRepo = NewPostgresSkillRepo(s.dbPool, s.testLogger)
	s.aboutRepo = NewPostgresAboutRepo(s.dbPool, s.testLogger)
	s.contactRepo = NewPostgresContactRepo(s.dbPool, s.testLogger)
}

func (s *ContentRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func (s *ContentRepoIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"projects", "experience", "skills", "about_me", "contact_info"} {
		_, err := s.dbPool.Exec(ctx, "DELETE FROM "+table)
		s.Require().NoError(err)
	}
}

func TestContentRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ContentRepoIntegrationTestSuite))
}

func newTestProject(title string, featured bool, displayOrder int, createdAt time.Time) *project.Project {
	return &project.Project{
		ID:            uuid.New(),
		Title:         title,
		Description:   "description",
		Technologies:  []string{"go", "postgres"},
		RepositoryURL: "https://github.com/user/" + title,
		Featured:      featured,
		DisplayOrder:  displayOrder,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func (s *ContentRepoIntegrationTestSuite) Test_Project_SaveAndFindByID() {
	ctx := context.Background()

	p := newTestProject("save-find", false, 0, time.Now().UTC())
	s.Require().NoError(s.projectRepo.Save(ctx, p))

	found, err := s.projectRepo.FindByID(ctx, p.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(p.Title, found.Title)
	s.Equal(p.Technologies, found.Technologies)
}

func (s *ContentRepoIntegrationTestSuite) Test_Project_ListOrder() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	plainOld := newTestProject("plain-old", false, 0, base.Add(-2*time.Hour))
	plainNew := newTestProject("plain-new", false, 0, base)
	featuredSecond := newTestProject("featured-second", true, 2, base)
	featuredFirst := newTestProject("featured-first", true, 1, base)

	for _, p := range []*project.Project{plainNew, featuredSecond, plainOld, featuredFirst} {
		s.Require().NoError(s.projectRepo.Save(ctx, p))
	}

	listed, err := s.projectRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 4)
	s.Equal("featured-first", listed[0].Title)
	s.Equal("featured-second", listed[1].Title)
	s.Equal("plain-old", listed[2].Title)
	s.Equal("plain-new", listed[3].Title)
}

func (s *ContentRepoIntegrationTestSuite) Test_Project_UpdateMissingRowIsNotFound() {
	ctx := context.Background()

	ghost := newTestProject("ghost", false, 0, time.Now().UTC())
	err := s.projectRepo.Update(ctx, ghost)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ContentRepoIntegrationTestSuite) Test_Project_DeleteIsIdempotent() {
	ctx := context.Background()

	p := newTestProject("deleted-twice", false, 0, time.Now().UTC())
	s.Require().NoError(s.projectRepo.Save(ctx, p))

	s.NoError(s.projectRepo.Delete(ctx, p.ID))
	s.NoError(s.projectRepo.Delete(ctx, p.ID))

	_, err := s.projectRepo.FindByID(ctx, p.ID)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func newTestExperience(company string, startDate time.Time) *experience.Experience {
	now := time.Now().UTC()
	return &experience.Experience{
		ID:           uuid.New(),
		Company:      company,
		Position:     "Engineer",
		Description:  "description",
		StartDate:    startDate,
		Technologies: []string{"go", "kafka"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *ContentRepoIntegrationTestSuite) Test_Experience_SaveAndFindByID() {
	ctx := context.Background()
	location := "Ho Chi Minh City"

	e := newTestExperience("Acme", time.Now().UTC().AddDate(-1, 0, 0))
	e.Location = &location
	s.Require().NoError(s.experienceRepo.Save(ctx, e))

	found, err := s.experienceRepo.FindByID(ctx, e.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(e.Company, found.Company)
	s.Equal(e.Technologies, found.Technologies)
	s.Require().NotNil(found.Location)
	s.Equal(location, *found.Location)
	s.Nil(found.EndDate)
}

func (s *ContentRepoIntegrationTestSuite) Test_Experience_ListOrder() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	oldest := newTestExperience("first-job", base.AddDate(-4, 0, 0))
	middle := newTestExperience("second-job", base.AddDate(-2, 0, 0))
	newest := newTestExperience("current-job", base)

	for _, e := range []*experience.Experience{middle, oldest, newest} {
		s.Require().NoError(s.experienceRepo.Save(ctx, e))
	}

	listed, err := s.experienceRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("current-job", listed[0].Company)
	s.Equal("second-job", listed[1].Company)
	s.Equal("first-job", listed[2].Company)
}

func (s *ContentRepoIntegrationTestSuite) Test_Experience_UpdateMissingRowIsNotFound() {
	ghost := newTestExperience("ghost", time.Now().UTC())
	err := s.experienceRepo.Update(context.Background(), ghost)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ContentRepoIntegrationTestSuite) Test_Experience_DeleteIsIdempotent() {
	ctx := context.Background()

	e := newTestExperience("deleted-twice", time.Now().UTC())
	s.Require().NoError(s.experienceRepo.Save(ctx, e))

	s.NoError(s.experienceRepo.Delete(ctx, e.ID))
	s.NoError(s.experienceRepo.Delete(ctx, e.ID))

	_, err := s.experienceRepo.FindByID(ctx, e.ID)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ContentRepoIntegrationTestSuite) Test_Skill_ListOrder() {
	ctx := context.Background()
	now := time.Now().UTC()

	for _, sk := range []*skill.Skill{
		{ID: uuid.New(), Name: "Kubernetes", Category: "infra", ProficiencyLevel: 3, DisplayOrder: 1, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "Go", Category: "backend", ProficiencyLevel: 5, DisplayOrder: 2, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), Name: "PostgreSQL", Category: "backend", ProficiencyLevel: 4, DisplayOrder: 1, CreatedAt: now, UpdatedAt: now},
	} {
		s.Require().NoError(s.skillRepo.Save(ctx, sk))
	}

	listed, err := s.skillRepo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 3)
	s.Equal("PostgreSQL", listed[0].Name)
	s.Equal("Go", listed[1].Name)
	s.Equal("Kubernetes", listed[2].Name)
}

func (s *ContentRepoIntegrationTestSuite) Test_About_GetBeforeAnyWrite() {
	a, err := s.aboutRepo.Get(context.Background())
	s.NoError(err)
	s.Nil(a)
}

func (s *ContentRepoIntegrationTestSuite) Test_About_UpsertCreatesThenReplaces() {
	ctx := context.Background()

	first, err := s.aboutRepo.Upsert(ctx, &about.AboutMe{
		Title: "Engineer", Description: "v1", UpdatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)
	s.Require().NotNil(first)

	second, err := s.aboutRepo.Upsert(ctx, &about.AboutMe{
		Title: "Senior Engineer", Description: "v2", UpdatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)

	// Same canonical row, replaced fields.
	s.Equal(first.ID, second.ID)
	s.Equal(first.CreatedAt.UTC(), second.CreatedAt.UTC())

	stored, err := s.aboutRepo.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal("Senior Engineer", stored.Title)
	s.Nil(stored.ProfileImageURL)
}

func (s *ContentRepoIntegrationTestSuite) Test_About_UpsertHealsStrayRows() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Simulate historical duplicates written before the singleton was
	// enforced. The earliest row is canonical.
	canonicalID := uuid.New()
	_, err := s.dbPool.Exec(ctx, `
		INSERT INTO about_me (id, title, description, created_at, updated_at)
		VALUES ($1, 'oldest', 'd', $2, $2), ($3, 'stray', 'd', $4, $4)
	`, canonicalID, now.Add(-time.Hour), uuid.New(), now)
	s.Require().NoError(err)

	stored, err := s.aboutRepo.Upsert(ctx, &about.AboutMe{
		Title: "healed", Description: "d", UpdatedAt: now,
	})
	s.Require().NoError(err)
	s.Equal(canonicalID, stored.ID)

	var count int
	s.Require().NoError(s.dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM about_me`).Scan(&count))
	s.Equal(1, count)

	after, err := s.aboutRepo.Get(ctx)
	s.Require().NoError(err)
	s.Equal("healed", after.Title)
}

func (s *ContentRepoIntegrationTestSuite) Test_Contact_UpsertRoundTrip() {
	ctx := context.Background()
	phone := "+84 123 456 789"

	_, err := s.contactRepo.Upsert(ctx, &contact.ContactInfo{
		Email: "hello@example.com", Phone: &phone, UpdatedAt: time.Now().UTC(),
	})
	s.Require().NoError(err)

	stored, err := s.contactRepo.Get(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal("hello@example.com", stored.Email)
	s.Require().NotNil(stored.Phone)
	s.Equal(phone, *stored.Phone)
	s.Nil(stored.LinkedinURL)
}
