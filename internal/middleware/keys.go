package middleware

type ContextKey string

const (
	ContextRequestID ContextKey = "request_id"
	ContextUserID    ContextKey = "user_id"
)

// SessionCookieName — HTTP-only cookie с токеном админской сессии.
const SessionCookieName = "admin_token"
