package counter

// Counter is the contract both shared-word variants implement.
//
// FetchXor reads the word, XORs the operand into it, stores the result,
// and returns the value it read. Whether those three steps are one
// indivisible operation is exactly what distinguishes the variants.
//
// Load returns the current value. The experiment only calls it after
// every mutating goroutine has been joined.
type Counter interface {
	FetchXor(operand uint64) (previous uint64)
	Load() uint64
}
