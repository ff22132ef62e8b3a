package api

import (
	"go-wine-dashboard/internal/api/handler"
	"go-wine-dashboard/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-wine-dashboard/docs"
)

// RegisterRoutes wires the dashboard API onto the router
func RegisterRoutes(r *router.Router, h *handler.Dashboard) {
	r.GET("/api/v1/dataset/summary", h.GetSummary)
	r.GET("/api/v1/dataset/records", h.GetRecords)
	r.GET("/api/v1/dataset/columns", h.GetColumns)
	r.GET("/api/v1/aggregate", h.GetAggregate)
	r.GET("/api/v1/histogram", h.GetHistogram)
	r.GET("/api/v1/correlation/matrix", h.GetCorrelationMatrix)
	r.GET("/api/v1/correlation", h.GetCorrelation)

	r.POST("/api/v1/reports", h.CreateReport)
	r.GET("/api/v1/reports", h.ListReports)
	// More specific routes first
	r.GET("/api/v1/reports/*/files", h.GetReportFiles)
	r.GET("/api/v1/reports/*/errors", h.GetReportErrors)
	r.GET("/api/v1/reports/*", h.GetReport)
	r.GET("/api/v1/download/*/*", h.DownloadFile)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
