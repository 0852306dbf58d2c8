package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"trivia/internal/trivia"
	"trivia/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	logger *logrus.Logger
	config *types.Config
	trivia *trivia.Service
	db     Pinger

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	triviaService *trivia.Service,
	db Pinger,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,
		trivia: triviaService,
		db:     db,
	}

	s.buildRouter(mux)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.RequestID(s.LoggingMiddleware(s.StripTrailingSlash(s.corsHandler(mux)))),
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the fully wrapped HTTP handler.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

const idPattern = `|^-?[0-9]+$`

func (s *Service) buildRouter(r *flow.Mux) {
	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/categories", s.handleGetCategories, http.MethodGet)
	r.HandleFunc("/categories/:id"+idPattern+"/questions", s.handleGetCategoryQuestions, http.MethodGet)

	r.HandleFunc("/questions", s.handleGetQuestions, http.MethodGet)
	r.HandleFunc("/questions", s.handlePostQuestion, http.MethodPost)
	r.HandleFunc("/questions/search", s.handleSearchQuestions, http.MethodPost)
	r.HandleFunc("/questions/:id"+idPattern, s.handleGetQuestion, http.MethodGet)
	r.HandleFunc("/questions/:id"+idPattern, s.handleDeleteQuestion, http.MethodDelete)

	r.HandleFunc("/quizzes", s.handlePostQuiz, http.MethodPost)
}

func (s *Service) corsHandler(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(next)
}
