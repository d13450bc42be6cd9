// Package middleware holds the gin handlers of the request pipeline:
// CORS, panic recovery, HTTPS redirection, bearer authentication,
// static files, route guards, rate limiting, metrics and request logging.
package middleware
