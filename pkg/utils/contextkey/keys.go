package contextkey

// key is a private type to avoid context key collisions across packages.
type key string

const (
	RunID key = "run_id"
)
