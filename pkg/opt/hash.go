package opt

import "hash/maphash"

// Kind tags keep Option and Result hashes from colliding even when their
// payloads and variant flags line up.
const (
	kindOption byte = 0x6f
	kindResult byte = 0x72
)

type optionKey[T comparable] struct {
	kind  byte
	some  bool
	value T
}

type resultKey[T, E comparable] struct {
	kind  byte
	ok    bool
	value T
	err   E
}

// Hash returns a seed-dependent hash of an Option derived from the
// container kind, the presence flag and the payload. Equal Options hash
// equal under the same seed, and every None of a given element type hashes
// to the same value no matter how it was constructed.
func Hash[T comparable](seed maphash.Seed, o Option[T]) uint64 {
	return maphash.Comparable(seed, optionKey[T]{kind: kindOption, some: o.some, value: o.value})
}

// HashFunc hashes an Option with a caller-supplied payload hash, for
// element types that are not comparable. hash is invoked only when the
// Option is present.
func HashFunc[T any](o Option[T], hash func(T) uint64) uint64 {
	h := mix(fnvOffset, uint64(kindOption))
	if !o.some {
		return mix(h, 0)
	}
	return mix(mix(h, 1), hash(o.value))
}

// HashResult returns a seed-dependent hash of a Result derived from the
// container kind, the variant flag and the payload slots.
func HashResult[T, E comparable](seed maphash.Seed, r Result[T, E]) uint64 {
	return maphash.Comparable(seed, resultKey[T, E]{kind: kindResult, ok: r.ok, value: r.value, err: r.err})
}

// HashResultFunc hashes a Result with caller-supplied payload hashes. Only
// the hash matching the populated variant is invoked.
func HashResultFunc[T, E any](r Result[T, E], hashOk func(T) uint64, hashErr func(E) uint64) uint64 {
	h := mix(fnvOffset, uint64(kindResult))
	if r.ok {
		return mix(mix(h, 1), hashOk(r.value))
	}
	return mix(mix(h, 0), hashErr(r.err))
}

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// mix folds the eight bytes of v into h, FNV-1a style.
func mix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= fnvPrime
		v >>= 8
	}
	return h
}
