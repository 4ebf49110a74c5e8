package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/skillfolio/skillfolio-lambda/internal/analytics"
	"github.com/skillfolio/skillfolio-lambda/internal/announcement"
	"github.com/skillfolio/skillfolio-lambda/internal/auth"
	"github.com/skillfolio/skillfolio-lambda/internal/certificate"
	"github.com/skillfolio/skillfolio-lambda/internal/goal"
	"github.com/skillfolio/skillfolio-lambda/internal/middlewares"
	"github.com/skillfolio/skillfolio-lambda/internal/project"
	"github.com/skillfolio/skillfolio-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler         *user.Handler
	CertificateHandler  *certificate.Handler
	ProjectHandler      *project.Handler
	GoalHandler         *goal.Handler
	AnalyticsHandler    *analytics.Handler
	AnnouncementHandler *announcement.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/announcements", announcement.Routes(cfg.AnnouncementHandler))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/certificates", certificate.Routes(cfg.CertificateHandler))
		r.Mount("/projects", project.Routes(cfg.ProjectHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/analytics", analytics.Routes(cfg.AnalyticsHandler))
	})

	return r
}
