package opt

import (
	"hash/maphash"
	"testing"

	"github.com/google/uuid"
)

func TestHash_EqualOptionsHashEqual(t *testing.T) {
	seed := maphash.MakeSeed()
	id := uuid.New()
	if Hash(seed, Some(id)) != Hash(seed, Some(id)) {
		t.Fatalf("equal Options should hash equal")
	}
	if Hash(seed, Some(1)) == Hash(seed, None[int]()) {
		t.Fatalf("Some and None should not hash equal")
	}
}

func TestHash_NoneConstantAcrossConstruction(t *testing.T) {
	seed := maphash.MakeSeed()
	first := Hash(seed, None[string]())
	for i := 0; i < 10; i++ {
		if got := Hash(seed, None[string]()); got != first {
			t.Fatalf("None hash should be constant, got %d then %d", first, got)
		}
	}
	var zero Option[string]
	if Hash(seed, zero) != first {
		t.Fatalf("zero-value Option should hash like None")
	}
}

func TestHash_KindTagSeparatesContainers(t *testing.T) {
	seed := maphash.MakeSeed()
	// Same flag, same payload slot values; only the container kind differs.
	o := Hash(seed, Some(1))
	r := HashResult(seed, Ok[int, int](1))
	if o == r {
		t.Fatalf("Option and Result hashes should not collide on kind")
	}
}

func TestHashResult_VariantFlagMatters(t *testing.T) {
	seed := maphash.MakeSeed()
	if HashResult(seed, Ok[int, int](0)) == HashResult(seed, Err[int](0)) {
		t.Fatalf("Ok and Err with zero payloads should hash differently")
	}
	if HashResult(seed, Ok[int, string](7)) != HashResult(seed, Ok[int, string](7)) {
		t.Fatalf("equal Results should hash equal")
	}
}

func TestHashFunc_PayloadHashOnlyWhenPresent(t *testing.T) {
	called := false
	payloadHash := func(s []int) uint64 {
		called = true
		return uint64(len(s))
	}
	noneHash := HashFunc(None[[]int](), payloadHash)
	if called {
		t.Fatalf("payload hash should not run for None")
	}
	someHash := HashFunc(Some([]int{1, 2}), payloadHash)
	if !called {
		t.Fatalf("payload hash should run for Some")
	}
	if someHash == noneHash {
		t.Fatalf("Some and None should not hash equal")
	}
	if HashFunc(Some([]int{1, 2}), payloadHash) != someHash {
		t.Fatalf("HashFunc should be deterministic")
	}
}

func TestHashResultFunc_OnlyPopulatedSideHashed(t *testing.T) {
	okCalls, errCalls := 0, 0
	hashOk := func(n int) uint64 { okCalls++; return uint64(n) }
	hashErr := func(s string) uint64 { errCalls++; return uint64(len(s)) }

	HashResultFunc(Ok[int, string](1), hashOk, hashErr)
	if okCalls != 1 || errCalls != 0 {
		t.Fatalf("expected only the ok hash to run, got ok=%d err=%d", okCalls, errCalls)
	}
	HashResultFunc(Err[int]("e"), hashOk, hashErr)
	if okCalls != 1 || errCalls != 1 {
		t.Fatalf("expected only the err hash to run, got ok=%d err=%d", okCalls, errCalls)
	}
}
