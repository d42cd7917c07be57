package refdata

import "sync"

// Store caches reference tables for the process lifetime. Each table is
// loaded at most once, including the failure case: a load error is cached
// the same way a loaded table is, so repeated calls under a data outage do
// not hammer the filesystem. There is no invalidation.
type Store struct {
	loader *Loader

	servicesOnce sync.Once
	services     []ServiceRecord
	servicesErr  error

	schemesOnce sync.Once
	schemes     []SchemeRecord
	schemesErr  error
}

// NewStore creates a Store over the given Loader.
func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// Services returns the cached service-guide table, loading it on first use.
func (s *Store) Services() ([]ServiceRecord, error) {
	s.servicesOnce.Do(func() {
		s.services, s.servicesErr = s.loader.Services()
	})
	return s.services, s.servicesErr
}

// Schemes returns the cached welfare-scheme table, loading it on first use.
func (s *Store) Schemes() ([]SchemeRecord, error) {
	s.schemesOnce.Do(func() {
		s.schemes, s.schemesErr = s.loader.Schemes()
	})
	return s.schemes, s.schemesErr
}

// Stats describes the loaded tables. Fingerprints are stable content
// hashes; an unavailable table reports zero records and an empty
// fingerprint.
type Stats struct {
	Services            int
	ServicesFingerprint string
	Schemes             int
	SchemesFingerprint  string
}

// Stats forces both tables to load and reports their sizes and
// fingerprints.
func (s *Store) Stats() Stats {
	var stats Stats
	if services, err := s.Services(); err == nil {
		stats.Services = len(services)
		stats.ServicesFingerprint = ServiceFingerprint(services)
	}
	if schemes, err := s.Schemes(); err == nil {
		stats.Schemes = len(schemes)
		stats.SchemesFingerprint = SchemeFingerprint(schemes)
	}
	return stats
}
