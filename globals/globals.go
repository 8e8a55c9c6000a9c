package globals

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RequestIDKey ContextKey = "requestId"

// Placeholder identity used when neither the request body nor a token names an author.
const DefaultAuthor = "mock-user-id"

// Value of created_by for ingredients created without one.
const SystemAuthor = "system"
