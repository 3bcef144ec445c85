package routes

import (
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	match    *handler.MatchHandler
	insights *handler.InsightsHandler
	wsh      *ws.Handler

	authMW *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	match *handler.MatchHandler,
	insights *handler.InsightsHandler,
	wsh *ws.Handler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:   health,
		auth:     auth,
		match:    match,
		insights: insights,
		wsh:      wsh,
		authMW:   authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.wsh != nil {
		app.Get("/ws/matches", r.wsh.HandleMatchesWS)
	}

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	r.auth.RegisterRoutes(v1.Group("/auth"))

	resumes := v1.Group("/resumes")
	if r.authMW != nil {
		resumes.Use(r.authMW.Middleware())
	}
	r.match.RegisterRoutes(resumes)
	r.insights.RegisterRoutes(resumes)
}
