package simdpp

import "testing"

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[float32](42.0)

	if v.NumLanes() != MaxLanes[float32]() {
		t.Errorf("Set: got %d lanes, want %d", v.NumLanes(), MaxLanes[float32]())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 42.0 {
			t.Errorf("Set: lane %d: got %v, want %v", i, v.data[i], 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[uint16]()

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != uint16(i) {
			t.Errorf("Iota: lane %d: got %v, want %d", i, v.data[i], i)
		}
	}
}

func TestStore(t *testing.T) {
	data := []int64{10, 20, 30, 40}
	v := Load(data)
	out := make([]int64, v.NumLanes())
	Store(v, out)

	for i := 0; i < v.NumLanes(); i++ {
		if out[i] != v.data[i] {
			t.Errorf("Store: lane %d: got %v, want %v", i, out[i], v.data[i])
		}
	}
}

func TestEqual(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{1, 0, 3, 0})
	m := Equal(a, b)

	want := []bool{true, false, true, false}
	for i := 0; i < m.NumLanes(); i++ {
		if m.GetBit(i) != want[i] {
			t.Errorf("Equal: lane %d: got %v, want %v", i, m.GetBit(i), want[i])
		}
	}
}

func TestNotEqual(t *testing.T) {
	a := Load([]float64{0, 1, 0, 2})
	m := NotEqual(a, Zero[float64]())

	want := []bool{false, true, false, true}
	for i := 0; i < m.NumLanes() && i < len(want); i++ {
		if m.GetBit(i) != want[i] {
			t.Errorf("NotEqual: lane %d: got %v, want %v", i, m.GetBit(i), want[i])
		}
	}
}

func TestOrderedComparisons(t *testing.T) {
	a := Load([]int8{1, 2, 3, 4})
	b := Load([]int8{2, 2, 2, 2})

	lt := LessThan(a, b)
	le := LessEqual(a, b)
	gt := GreaterThan(a, b)
	ge := GreaterEqual(a, b)

	wantLT := []bool{true, false, false, false}
	wantLE := []bool{true, true, false, false}
	wantGT := []bool{false, false, true, true}
	wantGE := []bool{false, true, true, true}

	for i := 0; i < 4; i++ {
		if lt.GetBit(i) != wantLT[i] {
			t.Errorf("LessThan: lane %d: got %v, want %v", i, lt.GetBit(i), wantLT[i])
		}
		if le.GetBit(i) != wantLE[i] {
			t.Errorf("LessEqual: lane %d: got %v, want %v", i, le.GetBit(i), wantLE[i])
		}
		if gt.GetBit(i) != wantGT[i] {
			t.Errorf("GreaterThan: lane %d: got %v, want %v", i, gt.GetBit(i), wantGT[i])
		}
		if ge.GetBit(i) != wantGE[i] {
			t.Errorf("GreaterEqual: lane %d: got %v, want %v", i, ge.GetBit(i), wantGE[i])
		}
	}
}

func TestIfThenElse(t *testing.T) {
	mask := SetMask[float32]([]bool{true, false, true, false})
	a := Load([]float32{1, 1, 1, 1})
	b := Load([]float32{2, 2, 2, 2})
	result := IfThenElse(mask, a, b)

	want := []float32{1, 2, 1, 2}
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != want[i] {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestIfThenElseZero(t *testing.T) {
	mask := SetMask[int32]([]bool{false, true, false, true})
	a := Load([]int32{7, 7, 7, 7})
	result := IfThenElseZero(mask, a)

	want := []int32{0, 7, 0, 7}
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != want[i] {
			t.Errorf("IfThenElseZero: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}
