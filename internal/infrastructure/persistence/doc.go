// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store users, roles, categories, videos,
// comments, likes and playlists. Repositories validate domain entities
// before writing and translate GORM errors into the domain's sentinel errors.
package persistence
