package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

func Error(err error) slog.Attr {
	const errorKey = "error"
	return slog.String(errorKey, err.Error())
}

func ErrorAny(err any) slog.Attr {
	const errorKey = "error"
	return slog.Any(errorKey, err)
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func UserID(id uuid.UUID) slog.Attr {
	const userIDKey = "user_id"
	return slog.String(userIDKey, id.String())
}

func Provider(provider string) slog.Attr {
	const providerKey = "provider"
	return slog.String(providerKey, provider)
}

func DataType(dataType string) slog.Attr {
	const dataTypeKey = "data_type"
	return slog.String(dataTypeKey, dataType)
}

func Day(t time.Time) slog.Attr {
	const dayKey = "date"
	return slog.String(dayKey, t.Format("2006-01-02"))
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Start(t time.Time) slog.Attr {
	const startKey = "start"
	return slog.Time(startKey, t)
}

func End(t time.Time) slog.Attr {
	const endKey = "end"
	return slog.Time(endKey, t)
}
