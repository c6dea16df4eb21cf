// Package middleware provides the inbound request pipeline for the task list
// API. The composition root installs it in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → router
//
// Every middleware has the shape func(http.Handler) http.Handler so it can be
// passed straight to chi's Use.
package middleware
