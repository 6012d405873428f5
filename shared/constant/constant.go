package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyAdminID    contextKey = "admin_id"
	ContextKeyAdminEmail contextKey = "admin_email"
	ContextKeyAdminName  contextKey = "admin_name"
	ContextKeyAdmin      contextKey = "admin"
)

const (
	RequestParamID     = "id"
	RequestParamStatus = "status"
	RequestParamSearch = "search"
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	// RequestMaxBodyBytes caps JSON request bodies at 1 MiB.
	RequestMaxBodyBytes = 1 << 20
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
	ResponseErrorInternal        = "Unexpected server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
