package urdna2015

import "testing"

func TestNewDigestRejectsUnsupportedAlgorithm(t *testing.T) {
	_, err := NewDigest("md5")
	if err == nil {
		t.Fatal("expected error for unsupported algorithm")
	}
	if Code(err) != ErrCodeUnsupportedAlgorithm {
		t.Fatalf("expected ErrCodeUnsupportedAlgorithm, got %v", Code(err))
	}
}

func TestDigestSHA256KnownVector(t *testing.T) {
	d, err := NewDigest("sha256")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.Update([]byte("abc"))
	got := d.Sum()
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestDigestIncrementalUpdateMatchesSingleUpdate(t *testing.T) {
	d1, _ := NewDigest("sha256")
	d1.Update([]byte("hello "))
	d1.Update([]byte("world"))

	d2, _ := NewDigest("sha256")
	d2.Update([]byte("hello world"))

	if d1.Sum() != d2.Sum() {
		t.Fatalf("incremental digest diverged: %s != %s", d1.Sum(), d2.Sum())
	}
}
