package get_stats

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/stats"
)

type StatsService interface {
	GetStats(ctx context.Context) (*stats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
