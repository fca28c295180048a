package common

// Collection names used as keys in the local key-value store.
const (
	UsersCollection        = "users"
	DestinationsCollection = "destinations"
	SessionCollection      = "session"
)
