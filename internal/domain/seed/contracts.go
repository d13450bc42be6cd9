// Package seed defines startup data seeding.
package seed

import "context"

// Result counts the records created by a seeding run
type Result struct {
	Categories int
	Videos     int
}

// DataSeedService inserts baseline content: default categories and sample videos.
type DataSeedService interface {
	// SeedData is idempotent: categories are matched by name and videos are only
	// inserted while the video table is empty.
	SeedData(ctx context.Context) (*Result, error)
}
