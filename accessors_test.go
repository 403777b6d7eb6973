package jsonval

import "testing"

func mustPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected a panic, got none", what)
		}
	}()
	fn()
}

func TestBoolAccessors(t *testing.T) {
	v, err := ParseString(`true`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if !v.Bool() {
		t.Fatalf("Bool() = false, want true")
	}
	v.SetBool(false)
	if v.Type() != False || v.Bool() {
		t.Fatalf("SetBool(false): Type()=%v Bool()=%v", v.Type(), v.Bool())
	}
}

func TestStringAccessors(t *testing.T) {
	v, err := ParseString(`"hi"`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	defer v.Release()
	if v.StringLength() != 2 {
		t.Fatalf("StringLength() = %d, want 2", v.StringLength())
	}
	v.SetString([]byte("longer value"))
	if v.Str() != "longer value" {
		t.Fatalf("Str() after SetString = %q", v.Str())
	}
}

func TestAccessorPanicsOnWrongKind(t *testing.T) {
	num, err := ParseString(`1`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	defer num.Release()

	mustPanic(t, "Bool on number", func() { num.Bool() })
	mustPanic(t, "StringBytes on number", func() { num.StringBytes() })
	mustPanic(t, "ArrayLen on number", func() { num.ArrayLen() })
	mustPanic(t, "ObjectLen on number", func() { num.ObjectLen() })

	str, err := ParseString(`"x"`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	defer str.Release()
	mustPanic(t, "Number on string", func() { str.Number() })
}

func TestSetNumberReleasesOldPayload(t *testing.T) {
	v, err := ParseString(`[1,2,3]`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	old := v.arr
	v.SetNumber(42)
	if v.Type() != Number || v.Number() != 42 {
		t.Fatalf("SetNumber did not replace payload: %v %v", v.Type(), v.Number())
	}
	for i := range old {
		if old[i].Type() != Null {
			t.Fatalf("old array element %d not released by SetNumber", i)
		}
	}
}
