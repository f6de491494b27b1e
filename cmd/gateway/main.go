package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/lingua-prep/linguaprep-backend/internal/api/http"
	auth "github.com/lingua-prep/linguaprep-backend/internal/auth/middleware"
	"github.com/lingua-prep/linguaprep-backend/internal/config"
	"github.com/lingua-prep/linguaprep-backend/internal/db"
	"github.com/lingua-prep/linguaprep-backend/internal/exam"
	"github.com/lingua-prep/linguaprep-backend/internal/formats"
	"github.com/lingua-prep/linguaprep-backend/internal/grading"
	"github.com/lingua-prep/linguaprep-backend/internal/grading/asr"
	genaioracle "github.com/lingua-prep/linguaprep-backend/internal/grading/genai"
	"github.com/lingua-prep/linguaprep-backend/internal/storage"
	syncx "github.com/lingua-prep/linguaprep-backend/internal/sync"

	// Exam profiles self-register via init().
	_ "github.com/lingua-prep/linguaprep-backend/internal/formats/ielts"
	_ "github.com/lingua-prep/linguaprep-backend/internal/formats/toefl"
	_ "github.com/lingua-prep/linguaprep-backend/internal/formats/yds"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := exam.NewSQLStore(dbh, cfg.DBDriver)

	// --- Blob store (audio answers) ---
	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	// --- Grading: oracle + transcriber per deployment ---
	var oracle grading.Oracle
	switch cfg.OracleProvider {
	case "genai":
		o, err := genaioracle.New(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			log.Fatalf("genai oracle: %v", err)
		}
		oracle = o
	default:
		oracle = grading.OfflineOracle{}
	}
	graderOpts := []grading.Option{
		grading.WithOracle(oracle),
		grading.WithOracleTimeout(cfg.OracleTimeout),
	}
	if cfg.Transcriber == "whisper" {
		graderOpts = append(graderOpts, grading.WithTranscriber(asr.NewWhisperTranscriber(bs)))
	}
	newGrader := func(p *formats.Profile) *grading.Grader {
		return grading.NewGrader(p, graderOpts...)
	}

	events := syncx.NewEventRepo(dbh, cfg.SiteID)

	reg, err := exam.NewRegistry(store, newGrader, events)
	if err != nil {
		log.Fatalf("exam registry: %v", err)
	}
	log.Printf("exam types registered: %v", reg.Codes())

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh, cfg.AdminUser, cfg.AdminPassHash))
	r.Post("/auth/register", auth.RegisterHandler(dbh))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Route("/api", func(ar chi.Router) {
			ar.Get("/exams", api.ListExamsHandler(reg))
			ar.Get("/exams/{examType}/skills/{skill}/next", api.NextQuestionHandler(reg))

			ar.Post("/attempts", api.SubmitAttemptHandler(reg))
			ar.Get("/attempts", api.ListAttemptsHandler(reg))

			ar.Get("/progress", api.ProgressHandler(reg))

			ar.Route("/assets", func(sr chi.Router) {
				api.MountAssets(sr, bs)
			})

			ar.Group(func(adm chi.Router) {
				adm.Use(auth.RequireRole("admin"))
				adm.Post("/admin/questions", api.AuthorQuestionHandler(reg))
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, oracle=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.OracleProvider)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
