// Package constants defines shared constants for the Home4Paws backend.
package constants

// ContextKey is the type used for request-scoped context values.
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation ID.
	ContextKeyRequestID ContextKey = "request_id"

	// ContextKeyUsername carries the authenticated username, when present.
	ContextKeyUsername ContextKey = "username"
)

const (
	// HeaderRequestID is the inbound/outbound correlation header.
	HeaderRequestID = "X-Request-ID"

	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"
)

// Upload categories map to subdirectories of the upload root and to the
// public /uploads URL space.
const (
	UploadCategoryReports       = "reports"
	UploadCategorySurrenderDogs = "surrender-dogs"
)

// MaxPhotosPerRequest caps the number of photos accepted on a single
// report or surrender submission.
const MaxPhotosPerRequest = 5
