package state

// debug toggles, set from the CLI
var (
	DBG_log_rounds bool
)
