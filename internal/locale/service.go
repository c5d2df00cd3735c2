// Package locale derives a cache-partition identifier from a coordinate when
// the caller does not supply one. Partitioning by IANA timezone keeps nearby
// lookups in the same partition without tracking user language settings.
package locale

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// DefaultPartition is used when no locale is supplied and the finder has no
// data for the coordinate (open ocean, poles).
const DefaultPartition = "default"

// Service resolves a coordinate to a cache partition name.
type Service interface {
	Partition(latitude, longitude float64) string
}

// service implements partition lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton locale service.
// Uses singleton pattern because tzf.Finder loads timezone data into memory (~50MB)
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, fmt.Errorf("locale service previously failed to initialize")
	}
	return instance, nil
}

// Partition returns the IANA timezone name for the coordinate, or the default
// partition when none is known.
func (s *service) Partition(latitude, longitude float64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	zone := s.finder.GetTimezoneName(longitude, latitude)
	if zone == "" {
		return DefaultPartition
	}
	return zone
}

// Static returns a Service that always reports the given partition. Useful
// for tests and offline runs where loading timezone data is unnecessary.
func Static(partition string) Service {
	return staticService(partition)
}

type staticService string

func (s staticService) Partition(float64, float64) string { return string(s) }
