//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/frontier3tech/detfl/observability"
)

// MetricsMiddleware counts requests and server errors and keeps the duration
// of the last request on the shared registry.
func MetricsMiddleware(obs *observability.Observability) echo.MiddlewareFunc {
	requests := obs.Counter(prometheus.CounterOpts{
		Name: "detfl_http_requests_total",
		Help: "Number of API requests served.",
	})
	failures := obs.Counter(prometheus.CounterOpts{
		Name: "detfl_http_server_errors_total",
		Help: "Number of API requests answered with a 5xx status.",
	})
	latency := obs.Gauge(prometheus.GaugeOpts{
		Name: "detfl_http_last_request_seconds",
		Help: "Duration of the last API request.",
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			requests.Inc()
			if status >= http.StatusInternalServerError {
				failures.Inc()
			}
			latency.Set(time.Since(start).Seconds())
			return err
		}
	}
}
