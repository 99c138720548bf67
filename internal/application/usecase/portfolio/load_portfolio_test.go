package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aboutUC "github.com/hoangtran/portfolio-api/internal/application/usecase/about"
	contactUC "github.com/hoangtran/portfolio-api/internal/application/usecase/contact"
	experienceUC "github.com/hoangtran/portfolio-api/internal/application/usecase/experience"
	projectUC "github.com/hoangtran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/hoangtran/portfolio-api/internal/application/usecase/skill"
	"github.com/hoangtran/portfolio-api/internal/domain/about"
	"github.com/hoangtran/portfolio-api/internal/domain/contact"
	"github.com/hoangtran/portfolio-api/internal/domain/experience"
	"github.com/hoangtran/portfolio-api/internal/domain/project"
	"github.com/hoangtran/portfolio-api/internal/domain/skill"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

// stub repositories; list and get behavior is driven per test, writes are
// never exercised here.

type stubProjectRepo struct {
	projects []*project.Project
	err      error
	delay    time.Duration
}

func (r *stubProjectRepo) Save(context.Context, *project.Project) error { return nil }
func (r *stubProjectRepo) FindByID(context.Context, uuid.UUID) (*project.Project, error) {
	return nil, nil
}
func (r *stubProjectRepo) Update(context.Context, *project.Project) error { return nil }
func (r *stubProjectRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.projects, nil
}

type stubExperienceRepo struct {
	entries []*experience.Experience
	err     error
}

func (r *stubExperienceRepo) Save(context.Context, *experience.Experience) error { return nil }
func (r *stubExperienceRepo) FindByID(context.Context, uuid.UUID) (*experience.Experience, error) {
	return nil, nil
}
func (r *stubExperienceRepo) Update(context.Context, *experience.Experience) error { return nil }
func (r *stubExperienceRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubExperienceRepo) List(context.Context) ([]*experience.Experience, error) {
	return r.entries, r.err
}

type stubSkillRepo struct {
	skills []*skill.Skill
	err    error
}

func (r *stubSkillRepo) Save(context.Context, *skill.Skill) error { return nil }
func (r *stubSkillRepo) FindByID(context.Context, uuid.UUID) (*skill.Skill, error) {
	return nil, nil
}
func (r *stubSkillRepo) Update(context.Context, *skill.Skill) error { return nil }
func (r *stubSkillRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *stubSkillRepo) List(context.Context) ([]*skill.Skill, error) {
	return r.skills, r.err
}

type stubAboutRepo struct {
	aboutMe *about.AboutMe
	err     error
}

func (r *stubAboutRepo) Get(context.Context) (*about.AboutMe, error) { return r.aboutMe, r.err }
func (r *stubAboutRepo) Upsert(_ context.Context, a *about.AboutMe) (*about.AboutMe, error) {
	return a, nil
}

type stubContactRepo struct {
	info *contact.ContactInfo
	err  error
}

func (r *stubContactRepo) Get(context.Context) (*contact.ContactInfo, error) { return r.info, r.err }
func (r *stubContactRepo) Upsert(_ context.Context, c *contact.ContactInfo) (*contact.ContactInfo, error) {
	return c, nil
}

type loadFixture struct {
	projectRepo    *stubProjectRepo
	experienceRepo *stubExperienceRepo
	skillRepo      *stubSkillRepo
	aboutRepo      *stubAboutRepo
	contactRepo    *stubContactRepo
	loadTimeout    time.Duration
}

func (f *loadFixture) build() *LoadPortfolioUseCase {
	log := logger.NewNop()
	timeout := f.loadTimeout
	if timeout == 0 {
		timeout = time.Second
	}
	return NewLoadPortfolioUseCase(
		projectUC.NewListProjectsUseCase(f.projectRepo),
		experienceUC.NewListExperienceUseCase(f.experienceRepo),
		skillUC.NewListSkillsUseCase(f.skillRepo),
		aboutUC.NewAboutUseCase(f.aboutRepo, nil, log),
		contactUC.NewContactUseCase(f.contactRepo, nil, log),
		nil, // no cache
		time.Minute,
		timeout,
		log,
	)
}

func populatedFixture() *loadFixture {
	return &loadFixture{
		projectRepo: &stubProjectRepo{projects: []*project.Project{
			{ID: uuid.New(), Title: "Featured", Featured: true},
			{ID: uuid.New(), Title: "Plain"},
		}},
		experienceRepo: &stubExperienceRepo{entries: []*experience.Experience{
			{ID: uuid.New(), Company: "Acme"},
		}},
		skillRepo: &stubSkillRepo{skills: []*skill.Skill{
			{ID: uuid.New(), Name: "Go", Category: "backend", ProficiencyLevel: 5},
		}},
		aboutRepo:   &stubAboutRepo{aboutMe: &about.AboutMe{ID: uuid.New(), Title: "Engineer"}},
		contactRepo: &stubContactRepo{info: &contact.ContactInfo{ID: uuid.New(), Email: "a@b.co"}},
	}
}

func TestLoadPortfolio_AllReadsSucceed(t *testing.T) {
	uc := populatedFixture().build()

	snap, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, snap.Degraded)
	assert.Len(t, snap.Projects, 2)
	assert.Len(t, snap.Experience, 1)
	assert.Len(t, snap.Skills, 1)
	require.NotNil(t, snap.AboutMe)
	assert.Equal(t, "Engineer", snap.AboutMe.Title)
	require.NotNil(t, snap.ContactInfo)
	assert.Equal(t, "a@b.co", snap.ContactInfo.Email)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestLoadPortfolio_SingleFailureDegradesWithoutSinkingOthers(t *testing.T) {
	f := populatedFixture()
	f.projectRepo.err = errors.New("connection refused")
	uc := f.build()

	snap, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.Degraded)
	assert.Empty(t, snap.Projects)
	assert.Len(t, snap.Skills, 1)
	assert.Len(t, snap.Experience, 1)
	assert.NotNil(t, snap.AboutMe)
}

func TestLoadPortfolio_MissingSingletonsAreNotDegradation(t *testing.T) {
	f := populatedFixture()
	f.aboutRepo.aboutMe = nil
	f.contactRepo.info = nil
	uc := f.build()

	snap, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, snap.Degraded)
	assert.Nil(t, snap.AboutMe)
	assert.Nil(t, snap.ContactInfo)
}

func TestLoadPortfolio_TimeoutServesPartialSnapshot(t *testing.T) {
	f := populatedFixture()
	f.projectRepo.delay = 500 * time.Millisecond
	f.loadTimeout = 50 * time.Millisecond
	uc := f.build()

	start := time.Now()
	snap, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.Degraded)
	assert.Empty(t, snap.Projects)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestLoadPortfolio_EmptyStoreServesEmptySnapshot(t *testing.T) {
	f := &loadFixture{
		projectRepo:    &stubProjectRepo{projects: []*project.Project{}},
		experienceRepo: &stubExperienceRepo{entries: []*experience.Experience{}},
		skillRepo:      &stubSkillRepo{skills: []*skill.Skill{}},
		aboutRepo:      &stubAboutRepo{},
		contactRepo:    &stubContactRepo{},
	}
	uc := f.build()

	snap, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, snap.Degraded)
	assert.NotNil(t, snap.Projects)
	assert.Empty(t, snap.Projects)
	assert.Nil(t, snap.AboutMe)
}
