package errs

import "testing"

func TestScopeCapturesMatchingFilter(t *testing.T) {
	m := NewErrorScopeManager(nil)
	m.Push(ErrorFilterValidation)
	m.Report(NewValidationError("Buffer", "Size", "size must be nonzero"))
	gotErr, err := m.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if gotErr == nil || gotErr.Filter != ErrorFilterValidation {
		t.Fatalf("Pop = %v, want captured validation error", gotErr)
	}
}

func TestScopeIgnoresNonMatchingFilter(t *testing.T) {
	m := NewErrorScopeManager(nil)
	m.Push(ErrorFilterOutOfMemory)
	m.Report(NewValidationError("Buffer", "Size", "size must be nonzero"))
	gotErr, err := m.Pop()
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if gotErr != nil {
		t.Fatalf("Pop = %v, want nil (filter mismatch)", gotErr)
	}
}

func TestScopeLIFONesting(t *testing.T) {
	m := NewErrorScopeManager(nil)
	m.Push(ErrorFilterValidation)
	m.Push(ErrorFilterValidation)
	m.Report(NewValidationError("Texture", "Width", "width must be nonzero"))

	inner, err := m.Pop()
	if err != nil {
		t.Fatalf("Pop inner: %v", err)
	}
	if inner == nil {
		t.Fatal("inner scope did not capture the error")
	}

	outer, err := m.Pop()
	if err != nil {
		t.Fatalf("Pop outer: %v", err)
	}
	if outer != nil {
		t.Fatalf("outer scope captured %v, want nil (inner already took it)", outer)
	}
}

func TestUncapturedErrorFallsThrough(t *testing.T) {
	var captured *GPUError
	m := NewErrorScopeManager(func(e *GPUError) { captured = e })
	m.Report(NewValidationError("Buffer", "Usage", "unsupported usage combination"))
	if captured == nil {
		t.Fatal("uncaptured handler was not invoked")
	}
}

func TestPopEmptyStackReturnsError(t *testing.T) {
	m := NewErrorScopeManager(nil)
	if _, err := m.Pop(); err == nil {
		t.Fatal("Pop on empty stack should return an error")
	}
}
