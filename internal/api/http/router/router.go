package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
	"github.com/mairapenna/nutriplan_backend/internal/api/http/middleware"
	"github.com/mairapenna/nutriplan_backend/internal/service/appointment"
	"github.com/mairapenna/nutriplan_backend/internal/service/auth"
	"github.com/mairapenna/nutriplan_backend/internal/service/dashboard"
	"github.com/mairapenna/nutriplan_backend/internal/service/diet"
	"github.com/mairapenna/nutriplan_backend/internal/service/export"
	"github.com/mairapenna/nutriplan_backend/internal/service/messaging"
	"github.com/mairapenna/nutriplan_backend/internal/service/patient"
	"github.com/mairapenna/nutriplan_backend/internal/service/settings"
	"github.com/mairapenna/nutriplan_backend/internal/service/tracking"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	AuthSvc        auth.Service
	PatientSvc     patient.Service
	AppointmentSvc appointment.Service
	DashboardSvc   dashboard.Service
	DietSvc        diet.Service
	TrackingSvc    tracking.Service
	MessagingSvc   messaging.Service
	SettingsSvc    settings.Service
	ExportSvc      export.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.AuthSvc)
	adminOnly := middleware.RequireAdmin()
	patientOnly := middleware.RequirePatient()

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.ExportSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	dashboardH := handler.NewDashboardHandler(r.p.DashboardSvc)
	dietH := handler.NewDietHandler(r.p.DietSvc)
	trackingH := handler.NewTrackingHandler(r.p.TrackingSvc)
	messagingH := handler.NewMessagingHandler(r.p.MessagingSvc)
	settingsH := handler.NewSettingsHandler(r.p.SettingsSvc)
	portalH := handler.NewPortalHandler(
		r.p.PatientSvc, r.p.AppointmentSvc, r.p.DietSvc, r.p.TrackingSvc, r.p.MessagingSvc,
	)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, dietH, trackingH, authRequired, adminOnly)
	r.registerAppointmentRoutes(api, appointmentH, authRequired, adminOnly)
	r.registerDashboardRoutes(api, dashboardH, authRequired, adminOnly)
	r.registerMessagingRoutes(api, messagingH, authRequired, adminOnly)
	r.registerSettingsRoutes(api, settingsH, dietH, authRequired, adminOnly)
	r.registerPortalRoutes(api, portalH, authRequired, patientOnly)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool {
			return r.p.Redis == nil || r.p.Redis.Ping(c.Context()).Err() == nil
		},
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
