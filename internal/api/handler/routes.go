package handler

import (
	"net/http"

	"github.com/vfg2006/store-deck-api/internal/api/handler/router"
	"github.com/vfg2006/store-deck-api/internal/usecases/aggregating"
	"github.com/vfg2006/store-deck-api/internal/usecases/reporting"
	"github.com/vfg2006/store-deck-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func StoreMetrics(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/store/metrics",
			Method:      http.MethodGet,
			Handler:     GetStoreMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/store/overview",
			Method:      http.MethodGet,
			Handler:     GetStoreOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Decks(service reporting.ReportBuilder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/decks",
			Method:      http.MethodPost,
			Handler:     CreateDeck(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
