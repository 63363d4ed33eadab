package tracing

import (
	"context"
	"fmt"

	"go.opencensus.io/trace"
)

// StartServiceSpan starts a new span named "<service>.<method>"
func StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, fmt.Sprintf("%s.%s", serviceName, methodName))
}

// EndSpan ends a span and records any error
func EndSpan(span *trace.Span, err error) {
	if err != nil {
		span.SetStatus(trace.Status{
			Code:    trace.StatusCodeUnknown,
			Message: err.Error(),
		})
	}
	span.End()
}

// TraceMethodWithResult runs f inside a service span
func TraceMethodWithResult[T any](
	ctx context.Context,
	serviceName,
	methodName string,
	f func(context.Context) (T, error),
) (T, error) {
	ctx, span := StartServiceSpan(ctx, serviceName, methodName)
	result, err := f(ctx)
	EndSpan(span, err)
	return result, err
}

// AddAttribute adds an attribute to the current span
func AddAttribute(ctx context.Context, key string, value interface{}) {
	span := trace.FromContext(ctx)
	if span == nil {
		return
	}

	switch v := value.(type) {
	case string:
		span.AddAttributes(trace.StringAttribute(key, v))
	case int64:
		span.AddAttributes(trace.Int64Attribute(key, v))
	case int32:
		span.AddAttributes(trace.Int64Attribute(key, int64(v)))
	case int:
		span.AddAttributes(trace.Int64Attribute(key, int64(v)))
	case float64:
		span.AddAttributes(trace.Float64Attribute(key, v))
	case bool:
		span.AddAttributes(trace.BoolAttribute(key, v))
	case fmt.Stringer:
		span.AddAttributes(trace.StringAttribute(key, v.String()))
	default:
		span.AddAttributes(trace.StringAttribute(key, fmt.Sprintf("%v", v)))
	}
}

// MarkSpanError marks the current span as failed with the given error
func MarkSpanError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	span := trace.FromContext(ctx)
	if span == nil {
		return
	}

	span.SetStatus(trace.Status{
		Code:    trace.StatusCodeUnknown,
		Message: err.Error(),
	})
}
