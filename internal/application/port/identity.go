package port

// IDGenerator produces an external id for a tab/panel pair.
// Only consulted when the caller supplies no id of its own.
type IDGenerator func() string
