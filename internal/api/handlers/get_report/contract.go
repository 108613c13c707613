package get_report

import (
	"context"

	reportsService "github.com/m04kA/SMC-TourService/internal/service/reports"
)

type ReportsService interface {
	BuildOverview(ctx context.Context, period reportsService.Period) (*reportsService.Overview, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
