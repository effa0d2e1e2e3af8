package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup, update, or delete targets a
	// content row that does not exist.
	ErrNotFound = errors.New("record was not found")

	// ErrSlugAlreadyExists is returned when creating or updating an article
	// collides with an existing slug (unique constraint on articles.slug).
	ErrSlugAlreadyExists = errors.New("article slug already exists")

	// ErrDatabaseNotConfigured is returned by every write on the static
	// fallback repository: without a database there is nothing to write to.
	ErrDatabaseNotConfigured = errors.New("database not configured")

	// ErrNoFieldsToUpdate is returned when a partial update carries no
	// fields at all.
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
