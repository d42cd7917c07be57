// Package refdata loads and caches the static reference tables that back
// the citizen-services tools.
//
// Two tables exist: government services (step-by-step guides) and welfare
// schemes (searchable by category and keyword). Each table is a JSON array
// read from a single file under a data directory.
//
// # Loading
//
// A Loader reads a table fresh from disk on every call:
//
//	loader := refdata.NewLoader("data", logger)
//	services, err := loader.Services()
//
// A missing or unparsable file returns an error wrapping ErrUnavailable.
// Callers are expected to treat that condition as "no data available" and
// render a user-facing message rather than propagate a fault. Records
// without a name are skipped with a warning; they never abort the rest of
// the table.
//
// # Caching
//
// A Store wraps a Loader and caches each table process-wide. Source files
// are static for the process lifetime, so there is no invalidation: each
// table is loaded at most once and served read-only thereafter.
//
//	store := refdata.NewStore(loader)
//	schemes, err := store.Schemes()
//
// Loaded tables are immutable. Callers must not modify returned slices.
package refdata
