package streams

// Numeric constrains the scalar types Contract, CSR construction, and the
// matvec/matmul helpers operate on. It mirrors the constraint set a generic
// numeric library typically exposes (see Signed/Unsigned/Integer/Float
// below), trimmed to the one constraint this package actually needs: a type
// with a usable zero value and + and * operators.
type Numeric interface {
	Signed | Unsigned | Float
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating point types.
type Float interface {
	~float32 | ~float64
}
