package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"driver-buddy/internal/delivery/http/middleware"
)

type RouterConfig struct {
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// NewLogger builds the JSON request logger shared by the server.
func NewLogger(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	logFormat := httplog.SchemaECS.Concise(env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "driver-buddy"),
		slog.String("env", env),
	)
}

func NewRouter(cfg RouterConfig, logger *slog.Logger, settingsHandler SettingsHandler, timeHandler TimeHandler, payHandler PayHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.UserHeader, "X-User-Name"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.UserRequired)

		r.Get("/me", settingsHandler.Me)
		r.Get("/settings", settingsHandler.GetSettings)
		r.Put("/settings", settingsHandler.UpdateSettings)

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", timeHandler.ListEntries)
			r.Post("/", timeHandler.AddEntry)
			r.Post("/submit", timeHandler.SubmitDay)
			r.Delete("/{id}", timeHandler.DeleteEntry)
		})
		r.Get("/submissions", timeHandler.ListSubmissions)
		r.Get("/compliance", timeHandler.Compliance)

		r.Route("/pay", func(r chi.Router) {
			r.Get("/", payHandler.History)
			r.Post("/", payHandler.CreatePay)
			r.Get("/export", payHandler.Export)
			r.Put("/{id}", payHandler.UpdatePay)
			r.Delete("/{id}", payHandler.DeletePay)
		})

		r.Post("/assistant", Ask)
	})
	return r
}
