package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sedrickwall/AlignedAI-sub000/internal/evaluations"
	"github.com/sedrickwall/AlignedAI-sub000/internal/llm"
	openai "github.com/sedrickwall/AlignedAI-sub000/internal/llm/openai"
	"github.com/sedrickwall/AlignedAI-sub000/internal/missions"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/config"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	LLM                llm.Client
	Pipeline           *missions.Pipeline
	EvaluationsRepo    evaluations.Repo
	EvaluationsService *evaluations.Service
	MissionsHandler    *missions.Handler
	EvaluationsHandler *evaluations.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		MissionsHandler:    app.MissionsHandler,
		EvaluationsHandler: app.EvaluationsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory history")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory history: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildServices(app *App) error {
	var repo evaluations.Repo
	if app.DB != nil {
		repo = &evaluations.PGRepo{DB: app.DB}
	} else {
		repo = evaluations.NewMemoryRepo()
	}

	// The LLM client is constructed once here and injected; a missing
	// credential wires the placeholder so every request falls back locally.
	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" {
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey != "" {
			openaiClient, err := openai.NewClient(apiKey, app.Config.LLMModel)
			if err != nil {
				return err
			}
			llmClient = openaiClient
		} else {
			log.Printf("bootstrap: OPENAI_API_KEY empty; using local classification only")
		}
	}

	evalSvc := evaluations.NewService(repo)

	app.LLM = llmClient
	app.Pipeline = missions.NewPipeline(llmClient)
	app.EvaluationsRepo = repo
	app.EvaluationsService = evalSvc
	app.MissionsHandler = missions.NewHandler(app.Pipeline, evaluations.Recorder{Svc: evalSvc})
	app.EvaluationsHandler = evaluations.NewHandler(evalSvc)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
