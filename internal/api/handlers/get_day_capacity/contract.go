package get_day_capacity

import (
	"context"

	getDayCapacity "github.com/m04kA/SMC-TourService/internal/usecase/get_day_capacity"
)

type GetDayCapacityUseCase interface {
	Execute(ctx context.Context, req *getDayCapacity.Request) (*getDayCapacity.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
