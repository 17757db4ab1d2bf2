package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/service/appointment"
	"github.com/mairapenna/nutriplan_backend/internal/service/auth"
	"github.com/mairapenna/nutriplan_backend/internal/service/dashboard"
	"github.com/mairapenna/nutriplan_backend/internal/service/diet"
	"github.com/mairapenna/nutriplan_backend/internal/service/export"
	"github.com/mairapenna/nutriplan_backend/internal/service/messaging"
	"github.com/mairapenna/nutriplan_backend/internal/service/patient"
	"github.com/mairapenna/nutriplan_backend/internal/service/settings"
	"github.com/mairapenna/nutriplan_backend/internal/service/tracking"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideDashboardService,
		ProvideFoodClient,
		ProvideDietService,
		ProvideTrackingService,
		ProvideMessagingService,
		ProvideAuthService,
		ProvideSettingsService,
		ProvideExportService,
	),
)

func ProvidePatientService(st *store.Store) patient.Service {
	return patient.New(st)
}

func ProvideAppointmentService(st *store.Store) appointment.Service {
	return appointment.New(st)
}

func ProvideDashboardService(st *store.Store, appts appointment.Service) dashboard.Service {
	return dashboard.New(st, appts)
}

func ProvideFoodClient(cfg *config.Config) *diet.FoodClient {
	return diet.NewFoodClient(cfg.FoodData)
}

func ProvideDietService(st *store.Store, foods *diet.FoodClient) diet.Service {
	return diet.New(st, foods)
}

func ProvideTrackingService(st *store.Store) tracking.Service {
	return tracking.New(st)
}

func ProvideMessagingService(lc fx.Lifecycle, st *store.Store, cfg *config.Config) messaging.Service {
	svc := messaging.New(st, time.Duration(cfg.Messaging.ReadReceiptDelayMs)*time.Millisecond)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			svc.Shutdown()
			return nil
		},
	})
	return svc
}

func ProvideAuthService(st *store.Store, rdb *redis.Client, cfg *config.Config) auth.Service {
	return auth.New(st, rdb, cfg.Auth)
}

func ProvideSettingsService(st *store.Store) settings.Service {
	return settings.New(st)
}

func ProvideExportService(st *store.Store) export.Service {
	return export.New(st)
}
