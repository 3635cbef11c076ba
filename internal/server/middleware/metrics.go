package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophtext/internal/server/metrics"
)

// MetricsMiddleware считает запросы по шаблону маршрута.
// Подключается через Router.Use, чтобы маршрут был уже известен.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			m.HTTPRequests.WithLabelValues(routeTemplate(r), r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
		})
	}
}

// routeTemplate возвращает шаблон пути, чтобы имена документов не раздували число серий
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return tmpl
}
