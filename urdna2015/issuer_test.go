package urdna2015

import (
	"reflect"
	"testing"
)

func TestIdentifierIssuerIssueIsIdempotent(t *testing.T) {
	iss := NewIdentifierIssuer("_:c14n")
	a := iss.Issue("x")
	b := iss.Issue("x")
	if a != b {
		t.Fatalf("Issue not idempotent: %s != %s", a, b)
	}
	if a != "_:c14n0" {
		t.Fatalf("expected _:c14n0, got %s", a)
	}
}

func TestIdentifierIssuerSequentialLabels(t *testing.T) {
	iss := NewIdentifierIssuer("_:c14n")
	if got := iss.Issue("x"); got != "_:c14n0" {
		t.Fatalf("got %s", got)
	}
	if got := iss.Issue("y"); got != "_:c14n1" {
		t.Fatalf("got %s", got)
	}
	if got := iss.Issue("x"); got != "_:c14n0" {
		t.Fatalf("got %s", got)
	}
	if got := iss.Issue("z"); got != "_:c14n2" {
		t.Fatalf("got %s", got)
	}
}

func TestIdentifierIssuerHasAndIssued(t *testing.T) {
	iss := NewIdentifierIssuer("_:c14n")
	if iss.Has("x") {
		t.Fatal("should not have x yet")
	}
	iss.Issue("x")
	if !iss.Has("x") {
		t.Fatal("should have x now")
	}
	v, ok := iss.Issued("x")
	if !ok || v != "_:c14n0" {
		t.Fatalf("got %s, %v", v, ok)
	}
	if _, ok := iss.Issued("nope"); ok {
		t.Fatal("should not have issued id for unknown original")
	}
}

func TestIdentifierIssuerIssuedOrder(t *testing.T) {
	iss := NewIdentifierIssuer("_:c14n")
	iss.Issue("b")
	iss.Issue("a")
	iss.Issue("b")
	iss.Issue("c")
	got := iss.IssuedOrder()
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestIdentifierIssuerCloneIsIndependent(t *testing.T) {
	iss := NewIdentifierIssuer("_:b")
	iss.Issue("x")

	clone := iss.Clone()
	clone.Issue("y")

	if iss.Has("y") {
		t.Fatal("mutation on clone leaked back to original")
	}
	if !clone.Has("x") {
		t.Fatal("clone should retain state from before the clone point")
	}
	if clone.Counter() != 2 {
		t.Fatalf("expected clone counter 2, got %d", clone.Counter())
	}
	if iss.Counter() != 1 {
		t.Fatalf("expected original counter 1, got %d", iss.Counter())
	}
}
