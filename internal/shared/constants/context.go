package constants

// Gin context keys set by the auth middleware and consumed by handlers.
const (
	ContextKeyUserID        = "user_id"
	ContextKeyUserUUID      = "user_uuid"
	ContextKeyUserRoles     = "user_roles"
	ContextKeyCondominiumID = "condominium_id"
	ContextKeyLanguage      = "language"
)

// Pagination bounds shared by list endpoints.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
