package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

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

// CacheKey holds the rendered snapshot; the worker deletes it whenever a
// content event arrives.
const CacheKey = "portfolio:snapshot"

const readCount = 5

// Snapshot is the best-effort aggregate of all five content reads. Degraded
// means at least one read failed or timed out and its fallback value is in
// place.
type Snapshot struct {
	Projects    []*project.Project       `json:"projects"`
	Experience  []*experience.Experience `json:"experience"`
	Skills      []*skill.Skill           `json:"skills"`
	AboutMe     *about.AboutMe           `json:"about_me"`
	ContactInfo *contact.ContactInfo     `json:"contact_info"`
	Degraded    bool                     `json:"degraded"`
	LoadedAt    time.Time                `json:"loaded_at"`
}

type LoadPortfolioUseCase struct {
	listProjects   *projectUC.ListProjectsUseCase
	listExperience *experienceUC.ListExperienceUseCase
	listSkills     *skillUC.ListSkillsUseCase
	aboutUseCase   *aboutUC.AboutUseCase
	contactUseCase *contactUC.ContactUseCase
	cache          *redis.Client
	cacheTTL       time.Duration
	loadTimeout    time.Duration
	logger         logger.Logger
}

func NewLoadPortfolioUseCase(
	listProjects *projectUC.ListProjectsUseCase,
	listExperience *experienceUC.ListExperienceUseCase,
	listSkills *skillUC.ListSkillsUseCase,
	aboutUseCase *aboutUC.AboutUseCase,
	contactUseCase *contactUC.ContactUseCase,
	cache *redis.Client,
	cacheTTL time.Duration,
	loadTimeout time.Duration,
	log logger.Logger,
) *LoadPortfolioUseCase {
	return &LoadPortfolioUseCase{
		listProjects:   listProjects,
		listExperience: listExperience,
		listSkills:     listSkills,
		aboutUseCase:   aboutUseCase,
		contactUseCase: contactUseCase,
		cache:          cache,
		cacheTTL:       cacheTTL,
		loadTimeout:    loadTimeout,
		logger:         log,
	}
}

type readResult struct {
	apply  func(*Snapshot)
	failed bool
}

// Execute fans the five reads out concurrently and joins them against the
// load timeout. Each read that fails or does not finish in time leaves its
// fallback value (empty list, absent singleton) in the snapshot; no single
// read can sink the load.
var tracer = otel.Tracer("portfolio_usecase")

func (uc *LoadPortfolioUseCase) Execute(ctx context.Context) (*Snapshot, error) {
	ctx, span := tracer.Start(ctx, "LoadPortfolio")
	defer span.End()

	if snap := uc.fromCache(ctx); snap != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return snap, nil
	}

	loadCtx, cancel := context.WithTimeout(ctx, uc.loadTimeout)
	defer cancel()

	snap := &Snapshot{
		Projects:   []*project.Project{},
		Experience: []*experience.Experience{},
		Skills:     []*skill.Skill{},
		LoadedAt:   time.Now().UTC(),
	}

	results := make(chan readResult, readCount)

	go func() {
		out, err := uc.listProjects.Execute(loadCtx)
		if err != nil {
			uc.logger.Warn("Portfolio load: projects read failed", zap.Error(err))
			results <- readResult{failed: true}
			return
		}
		results <- readResult{apply: func(s *Snapshot) { s.Projects = out.Projects }}
	}()
	go func() {
		out, err := uc.listExperience.Execute(loadCtx)
		if err != nil {
			uc.logger.Warn("Portfolio load: experience read failed", zap.Error(err))
			results <- readResult{failed: true}
			return
		}
		results <- readResult{apply: func(s *Snapshot) { s.Experience = out.Experience }}
	}()
	go func() {
		out, err := uc.listSkills.Execute(loadCtx)
		if err != nil {
			uc.logger.Warn("Portfolio load: skills read failed", zap.Error(err))
			results <- readResult{failed: true}
			return
		}
		results <- readResult{apply: func(s *Snapshot) { s.Skills = out.Skills }}
	}()
	go func() {
		out, err := uc.aboutUseCase.ExecuteGet(loadCtx)
		if err != nil {
			uc.logger.Warn("Portfolio load: about_me read failed", zap.Error(err))
			results <- readResult{failed: true}
			return
		}
		results <- readResult{apply: func(s *Snapshot) { s.AboutMe = out.AboutMe }}
	}()
	go func() {
		out, err := uc.contactUseCase.ExecuteGet(loadCtx)
		if err != nil {
			uc.logger.Warn("Portfolio load: contact_info read failed", zap.Error(err))
			results <- readResult{failed: true}
			return
		}
		results <- readResult{apply: func(s *Snapshot) { s.ContactInfo = out.ContactInfo }}
	}()

collect:
	for i := 0; i < readCount; i++ {
		select {
		case r := <-results:
			if r.failed {
				snap.Degraded = true
				continue
			}
			r.apply(snap)
		case <-loadCtx.Done():
			uc.logger.Warn("Portfolio load timed out, serving partial snapshot", zap.Int("reads_completed", i))
			snap.Degraded = true
			break collect
		}
	}

	span.SetAttributes(attribute.Bool("degraded", snap.Degraded))

	if !snap.Degraded {
		uc.storeCache(ctx, snap)
	}

	return snap, nil
}

func (uc *LoadPortfolioUseCase) fromCache(ctx context.Context) *Snapshot {
	if uc.cache == nil {
		return nil
	}

	raw, err := uc.cache.Get(ctx, CacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			uc.logger.Warn("Portfolio cache read failed", zap.Error(err))
		}
		return nil
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(raw, snap); err != nil {
		uc.logger.Warn("Portfolio cache entry is corrupt, ignoring", zap.Error(err))
		return nil
	}
	return snap
}

func (uc *LoadPortfolioUseCase) storeCache(ctx context.Context, snap *Snapshot) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		uc.logger.Warn("Portfolio cache marshal failed", zap.Error(err))
		return
	}
	if err := uc.cache.Set(ctx, CacheKey, raw, uc.cacheTTL).Err(); err != nil {
		uc.logger.Warn("Portfolio cache write failed", zap.Error(err))
	}
}
