package debug

// Assert does nothing if the debug flag is not provided.
// If the debug flag is provided, panics if condition is false.
func Assert(condition bool, message ...string) {
	if Debug && !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
