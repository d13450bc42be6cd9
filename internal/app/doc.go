// Package app contains the application services of the video platform.
// Services are stateless apart from their dependencies and are safe for
// concurrent use by request handlers.
package app
