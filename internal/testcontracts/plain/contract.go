package plain

// Ping returns a constant answer. The contract intentionally exposes no
// controller method.
func Ping() int {
	return 42
}
