// Package middleware stores global middleware and the global error
// handler.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, request ids, tracing, metrics, CORS, panic recovery
// and the uniform rendering of errors.
package middleware
