package gateway

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/integrations/shareitserver"
)

// Forwarder пересылает провалидированный запрос на сервер
type Forwarder interface {
	Forward(ctx context.Context, req *shareitserver.Request) (*shareitserver.Response, error)
}

// UpstreamRecorder учитывает ошибки связи с сервером
type UpstreamRecorder interface {
	IncUpstreamError()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopRecorder struct{}

func (noopRecorder) IncUpstreamError() {}
