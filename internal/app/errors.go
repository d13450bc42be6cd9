package app

import (
	"errors"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// found reports whether a lookup returned a record. Lookup failures other than
// domain.ErrNotFound are returned as err.
func found(lookupErr error) (bool, error) {
	if lookupErr == nil {
		return true, nil
	}
	if errors.Is(lookupErr, domain.ErrNotFound) {
		return false, nil
	}
	return false, lookupErr
}

// SeedRecorder counts records created by seeding
type SeedRecorder interface {
	SeedRecordCreated(kind string)
}

type noopSeedRecorder struct{}

func (noopSeedRecorder) SeedRecordCreated(string) {}

func seedRecorderOrNoop(recorder SeedRecorder) SeedRecorder {
	if recorder == nil {
		return noopSeedRecorder{}
	}
	return recorder
}
