package handler

import (
	"net/http"

	"github.com/vfg2006/media-trends-api/internal/api/handler/router"
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

func Trends(services TrendsServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/trends/report",
			Method:  http.MethodGet,
			Handler: GetTrendsReport(services),
		},
		{
			Path:    "/v1/trends/report/html",
			Method:  http.MethodGet,
			Handler: GetTrendsReportHTML(services),
		},
	}
}

func Snapshots(services TrendsServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshots(services),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
