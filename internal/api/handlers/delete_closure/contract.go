package delete_closure

import (
	"context"
	"time"
)

type ClosuresService interface {
	Delete(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
