package streams

// Debug enables runtime assertions for invariants that are the caller's
// responsibility under the indexed stream protocol (strictly increasing
// indices fed to the sparse-vector collectors, handover ordering in chained
// streams). Leave false in production; flip it
// on in tests to catch a misbehaving custom source early instead of letting
// it silently produce a wrong answer downstream.
var Debug = false

func assertInvariant(cond bool, msg string) {
	if Debug && !cond {
		panic("streams: " + msg)
	}
}
