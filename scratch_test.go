package jsonval

import "testing"

func TestScratchByteStackRollback(t *testing.T) {
	s := newScratch(0)
	mark := s.markBytes()
	s.pushByte('a')
	s.pushByte('b')
	s.discardBytes(mark)
	if !s.empty() {
		t.Fatalf("scratch not empty after discardBytes: %+v", s)
	}
}

func TestScratchByteStackPop(t *testing.T) {
	s := newScratch(0)
	mark := s.markBytes()
	for _, b := range []byte("hello") {
		s.pushByte(b)
	}
	got := s.popBytes(mark)
	if string(got) != "hello" {
		t.Fatalf("popBytes = %q, want %q", got, "hello")
	}
	if !s.empty() {
		t.Fatalf("scratch not empty after popBytes: %+v", s)
	}
}

func TestScratchValStackNilOnEmptyRange(t *testing.T) {
	s := newScratch(0)
	mark := s.markVals()
	if got := s.popVals(mark); got != nil {
		t.Fatalf("popVals on empty range = %#v, want nil", got)
	}
}

func TestScratchValStackDiscardReleasesChildren(t *testing.T) {
	s := newScratch(0)
	mark := s.markVals()
	v, err := ParseString(`[1,2]`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	s.pushVal(*v)
	s.discardVals(mark)
	// discardVals released the pushed copy's subtree; since Value.arr shares
	// its backing array with the original, the original's elements are
	// released in place even though v.arr itself still points at them.
	for i := range v.arr {
		if v.arr[i].Type() != Null {
			t.Fatalf("element %d not released: %v", i, v.arr[i].Type())
		}
	}
}

func TestScratchMemStackDiscardReleasesValueAndKey(t *testing.T) {
	s := newScratch(0)
	mark := s.markMems()
	val, err := ParseString(`[1,2]`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	m := Member{key: ownedNulTerminated([]byte("k")), val: *val}
	s.pushMem(m)
	s.discardMems(mark)
	if !s.empty() {
		t.Fatalf("scratch not empty after discardMems: %+v", s)
	}
	// The pushed member's value shares its backing array with val, so its
	// elements are released in place; the popped slot's key is cleared.
	for i := range val.arr {
		if val.arr[i].Type() != Null {
			t.Fatalf("member value element %d not released: %v", i, val.arr[i].Type())
		}
	}
	if k := s.mems[:mark+1][mark].key; k != nil {
		t.Fatalf("member key not released: %q", k)
	}
}

func TestNewScratchDefaultsCapacity(t *testing.T) {
	s := newScratch(0)
	if cap(s.bytes) != defaultScratchCap {
		t.Fatalf("newScratch(0) byte capacity = %d, want %d", cap(s.bytes), defaultScratchCap)
	}
	s2 := newScratch(64)
	if cap(s2.bytes) != 64 {
		t.Fatalf("newScratch(64) byte capacity = %d, want 64", cap(s2.bytes))
	}
}
