package digest_test

import (
	"testing"

	"squash/internal/digest"
)

func TestSumDeterministic(t *testing.T) {
	a := digest.Sum([]byte("hello"))
	b := digest.Sum([]byte("hello"))
	if a != b {
		t.Fatal("same input produced different digests")
	}
	if a == digest.Sum([]byte("hello!")) {
		t.Fatal("different inputs produced the same digest")
	}
}

func TestFingerprintShape(t *testing.T) {
	fp := digest.Fingerprint([]byte("hello"))
	if len(fp) != 20 {
		t.Fatalf("fingerprint length %d, want 20", len(fp))
	}
	if fp == digest.Fingerprint(nil) {
		t.Fatal("distinct inputs share a fingerprint")
	}
}
