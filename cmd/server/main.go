package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	httpAdapter "github.com/hoangtran/portfolio-api/adapters/http"
	"github.com/hoangtran/portfolio-api/adapters/media_storage"
	"github.com/hoangtran/portfolio-api/adapters/persistence"
	aboutUC "github.com/hoangtran/portfolio-api/internal/application/usecase/about"
	contactUC "github.com/hoangtran/portfolio-api/internal/application/usecase/contact"
	experienceUC "github.com/hoangtran/portfolio-api/internal/application/usecase/experience"
	"github.com/hoangtran/portfolio-api/internal/application/usecase/media"
	"github.com/hoangtran/portfolio-api/internal/application/usecase/portfolio"
	projectUC "github.com/hoangtran/portfolio-api/internal/application/usecase/project"
	skillUC "github.com/hoangtran/portfolio-api/internal/application/usecase/skill"
	"github.com/hoangtran/portfolio-api/internal/config"
	"github.com/hoangtran/portfolio-api/pkg/logger"
	"github.com/hoangtran/portfolio-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("starting portfolio API server", zap.String("env", cfg.App.Env))

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, log, "portfolio-api")
		if err != nil {
			log.Fatal("cannot init tracer", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Error("tracer shutdown failed", err)
			}
		}()
	}

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatal("cannot init Kafka producer", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, log)
	if err != nil {
		log.Fatal("cannot init media uploader", err)
	}

	// Repositories
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, log)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, log)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, log)
	aboutRepo := persistence.NewPostgresAboutRepo(dbPool, log)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, log)

	// Use cases
	createProjectUC := projectUC.NewCreateProjectUseCase(projectRepo, kafkaClient, log)
	listProjectsUC := projectUC.NewListProjectsUseCase(projectRepo)
	updateProjectUC := projectUC.NewUpdateProjectUseCase(projectRepo, kafkaClient, log)
	deleteProjectUC := projectUC.NewDeleteProjectUseCase(projectRepo, kafkaClient, log)

	createExperienceUC := experienceUC.NewCreateExperienceUseCase(experienceRepo, kafkaClient, log)
	listExperienceUC := experienceUC.NewListExperienceUseCase(experienceRepo)
	updateExperienceUC := experienceUC.NewUpdateExperienceUseCase(experienceRepo, kafkaClient, log)
	deleteExperienceUC := experienceUC.NewDeleteExperienceUseCase(experienceRepo, kafkaClient, log)

	createSkillUC := skillUC.NewCreateSkillUseCase(skillRepo, kafkaClient, log)
	listSkillsUC := skillUC.NewListSkillsUseCase(skillRepo)
	updateSkillUC := skillUC.NewUpdateSkillUseCase(skillRepo, kafkaClient, log)
	deleteSkillUC := skillUC.NewDeleteSkillUseCase(skillRepo, kafkaClient, log)

	aboutUseCase := aboutUC.NewAboutUseCase(aboutRepo, kafkaClient, log)
	contactUseCase := contactUC.NewContactUseCase(contactRepo, kafkaClient, log)

	loadPortfolioUC := portfolio.NewLoadPortfolioUseCase(
		listProjectsUC,
		listExperienceUC,
		listSkillsUC,
		aboutUseCase,
		contactUseCase,
		redisClient,
		cfg.Portfolio.CacheTTL,
		cfg.Portfolio.LoadTimeout,
		log,
	)

	uploadMediaUC := media.NewUploadMediaUseCase(uploader)

	// HTTP
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Project:    httpAdapter.NewProjectHandler(createProjectUC, listProjectsUC, updateProjectUC, deleteProjectUC),
		Experience: httpAdapter.NewExperienceHandler(createExperienceUC, listExperienceUC, updateExperienceUC, deleteExperienceUC),
		Skill:      httpAdapter.NewSkillHandler(createSkillUC, listSkillsUC, updateSkillUC, deleteSkillUC),
		About:      httpAdapter.NewAboutHandler(aboutUseCase),
		Contact:    httpAdapter.NewContactHandler(contactUseCase),
		Portfolio:  httpAdapter.NewPortfolioHandler(loadPortfolioUC),
		Media:      httpAdapter.NewMediaHandler(uploadMediaUC),
	}, log)

	log.Info("server listening", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("cannot run server", err)
	}
}
