package snatch

import "testing"

func TestSnatchOnce(t *testing.T) {
	lock := NewSnatchLock()
	s := NewSnatchable(42)

	rg := lock.Read()
	if got := s.Get(rg); got == nil || *got != 42 {
		t.Fatalf("Get = %v, want 42", got)
	}
	rg.Release()

	wg := lock.Write()
	first := s.Snatch(wg)
	if first == nil || *first != 42 {
		t.Fatalf("first Snatch = %v, want 42", first)
	}
	second := s.Snatch(wg)
	if second != nil {
		t.Fatalf("second Snatch = %v, want nil", second)
	}
	wg.Release()

	if !s.IsSnatched() {
		t.Fatal("IsSnatched() = false after Snatch")
	}
	rg2 := lock.Read()
	if got := s.Get(rg2); got != nil {
		t.Fatalf("Get after snatch = %v, want nil", got)
	}
	rg2.Release()
}

func TestReadersConcurrentWithoutWriter(t *testing.T) {
	lock := NewSnatchLock()
	g1 := lock.Read()
	g2 := lock.Read()
	g1.Release()
	g2.Release()
}
