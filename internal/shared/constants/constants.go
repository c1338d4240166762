package constants

const (
	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyUserEmail = "user_email"
	ContextKeyRequestID = "request_id"

	// Roles carried in access tokens
	RoleGuest    = "guest"
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"

	// Database table names
	TableArticles           = "kb_articles"
	TableGuides             = "onboarding_guides"
	TableVideos             = "video_tutorials"
	TableSequenceCounters   = "sequence_counters"
	TableSupportTickets     = "support_tickets"
	TableSupportMessages    = "support_messages"
	TableAddressBooks       = "address_books"
	TableOnboardingProgress = "onboarding_progress"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
)
