package faicon

import (
	"math"
	"testing"
)

func TestOutlineClosesContours(t *testing.T) {
	o := NewOutline([]Segment{
		{Op: SegmentMoveTo, Args: [3]Point{{0, 0}}},
		{Op: SegmentLineTo, Args: [3]Point{{10, 0}}},
		{Op: SegmentLineTo, Args: [3]Point{{10, 10}}},
		{Op: SegmentMoveTo, Args: [3]Point{{20, 0}}},
		{Op: SegmentLineTo, Args: [3]Point{{30, 0}}},
		{Op: SegmentLineTo, Args: [3]Point{{30, 10}}},
		{Op: SegmentClose},
		{Op: SegmentClose}, // stray
	})

	var ops []SegmentOp
	for _, s := range o.Segments() {
		ops = append(ops, s.Op)
	}
	want := []SegmentOp{
		SegmentMoveTo, SegmentLineTo, SegmentLineTo, SegmentClose,
		SegmentMoveTo, SegmentLineTo, SegmentLineTo, SegmentClose,
	}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("ops[%d] = %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestOutlineBoundsUseControlPoints(t *testing.T) {
	o := NewOutlineBuilder().
		MoveTo(0, 0).
		QuadTo(5, 20, 10, 0).
		Close().
		Build()

	b := o.Bounds()
	if b.MaxY != 20 {
		t.Errorf("MaxY = %v, want 20 (control point)", b.MaxY)
	}
	if b.MinX != 0 || b.MaxX != 10 || b.MinY != 0 {
		t.Errorf("Bounds = %+v", b)
	}
}

func TestOutlineEmpty(t *testing.T) {
	o := NewOutline(nil)
	if !o.IsEmpty() {
		t.Error("NewOutline(nil) should be empty")
	}
	if b := o.Bounds(); b != (Rect{}) {
		t.Errorf("empty Bounds = %+v, want zero", b)
	}
}

func TestOutlineTransform(t *testing.T) {
	o := NewOutlineBuilder().Rect(0, 0, 10, 5).Build()
	got := o.Transform(Scale(2, 2).Multiply(Translate(1, 1)))

	want := Rect{MinX: 2, MinY: 2, MaxX: 22, MaxY: 12}
	if got.Bounds() != want {
		t.Errorf("Bounds = %+v, want %+v", got.Bounds(), want)
	}
	if o.Bounds() != (Rect{MaxX: 10, MaxY: 5}) {
		t.Error("Transform must not modify the receiver")
	}
}

func TestOutlineSegmentsIsCopy(t *testing.T) {
	o := NewOutlineBuilder().Rect(0, 0, 1, 1).Build()
	segs := o.Segments()
	segs[0].Args[0] = Pt(100, 100)
	if o.Segments()[0].Args[0] != Pt(0, 0) {
		t.Error("Segments should return a copy")
	}
}

func TestOutlineBuilderCircle(t *testing.T) {
	b := NewOutlineBuilder().Circle(0, 0, 10).Build().Bounds()
	for _, v := range []float64{b.MinX, b.MinY} {
		if math.Abs(v+10) > 1e-9 {
			t.Errorf("circle min = %v, want -10", v)
		}
	}
	for _, v := range []float64{b.MaxX, b.MaxY} {
		if math.Abs(v-10) > 1e-9 {
			t.Errorf("circle max = %v, want 10", v)
		}
	}
}

func TestSegmentOpString(t *testing.T) {
	tests := []struct {
		op   SegmentOp
		want string
	}{
		{SegmentMoveTo, "MoveTo"},
		{SegmentLineTo, "LineTo"},
		{SegmentQuadTo, "QuadTo"},
		{SegmentCubeTo, "CubeTo"},
		{SegmentClose, "Close"},
		{SegmentOp(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
