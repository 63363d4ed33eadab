package middleware

import (
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"
)

// TracingMiddleware wraps requests in an OpenCensus server span named after
// the RPC route, e.g. "POST /api/elementStyles.setProperty". ochttp records
// the status code; the store and element being edited are added here.
func TracingMiddleware(next http.Handler) http.Handler {
	annotated := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if span := trace.FromContext(r.Context()); span != nil {
			query := r.URL.Query()
			attrs := []trace.Attribute{
				trace.StringAttribute("http.path", r.URL.Path),
			}
			if storeID := query.Get("store_id"); storeID != "" {
				attrs = append(attrs, trace.StringAttribute("sitebuilder.store_id", storeID))
			}
			if elementID := query.Get("element_id"); elementID != "" {
				attrs = append(attrs, trace.StringAttribute("sitebuilder.element_id", elementID))
			}
			if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
				attrs = append(attrs, trace.StringAttribute("http.request_id", requestID))
			}
			span.AddAttributes(attrs...)
		}
		next.ServeHTTP(w, r)
	})

	return &ochttp.Handler{
		Handler: annotated,
		FormatSpanName: func(r *http.Request) string {
			return r.Method + " " + r.URL.Path
		},
		IsPublicEndpoint: true,
	}
}
