package types

// ContextUserKey is the gin context key the auth middleware stores the
// authenticated user under.
const ContextUserKey = "user"
