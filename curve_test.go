package jelly

import (
	"math"
	"testing"
)

func TestSampleCurveRoundedClosed(t *testing.T) {
	r := squareRing(true)
	c := SampleCurve(r, CurveRounded)

	if !c.Closed {
		t.Error("curve should be closed")
	}
	if len(c.Segments) != r.Len() {
		t.Fatalf("segments = %d, want %d", len(c.Segments), r.Len())
	}
	if want := (Vec2{X: 0, Y: 5}); c.Start != want {
		t.Errorf("Start = %+v, want %+v", c.Start, want)
	}
	for i, seg := range c.Segments {
		p := r.At(i).Position
		if seg.Control != p {
			t.Errorf("segment %d control = %+v, want %+v", i, seg.Control, p)
		}
		if want := p.Mid(r.At(i + 1).Position); seg.End != want {
			t.Errorf("segment %d end = %+v, want %+v", i, seg.End, want)
		}
	}
	if last := c.Segments[len(c.Segments)-1].End; last != c.Start {
		t.Errorf("last end %+v does not meet start %+v", last, c.Start)
	}
}

func TestSampleCurveStraightClosed(t *testing.T) {
	r := squareRing(true)
	c := SampleCurve(r, CurveStraight)
	if len(c.Segments) != 4 {
		t.Fatalf("segments = %d, want 4", len(c.Segments))
	}
	if c.Start != r.At(3).Position {
		t.Errorf("Start = %+v, want last point", c.Start)
	}
	for i, seg := range c.Segments {
		if seg.Control != seg.End || seg.End != r.At(i).Position {
			t.Errorf("segment %d = %+v", i, seg)
		}
	}
}

func TestSampleCurveOpen(t *testing.T) {
	r := squareRing(false)

	rounded := SampleCurve(r, CurveRounded)
	if rounded.Closed {
		t.Error("open ring produced closed curve")
	}
	if rounded.Start != r.At(0).Position {
		t.Errorf("Start = %+v, want first point", rounded.Start)
	}
	if len(rounded.Segments) != 3 {
		t.Fatalf("rounded segments = %d, want 3", len(rounded.Segments))
	}
	last := rounded.Segments[2]
	if last.End != r.At(3).Position || last.Control != last.End {
		t.Errorf("rounded open curve should end on the last point, got %+v", last)
	}

	straight := SampleCurve(r, CurveStraight)
	if len(straight.Segments) != 3 {
		t.Fatalf("straight segments = %d, want 3", len(straight.Segments))
	}
	if straight.Segments[2].End != r.At(3).Position {
		t.Errorf("straight end = %+v", straight.Segments[2].End)
	}
}

func TestSampleCurveFollowsDeformation(t *testing.T) {
	r := squareRing(true)
	r.At(1).Position = Vec2{X: 20, Y: -10}
	c := SampleCurve(r, CurveRounded)
	if c.Segments[1].Control != (Vec2{X: 20, Y: -10}) {
		t.Errorf("control = %+v, want displaced point", c.Segments[1].Control)
	}
}

func TestAppendCurveReusesBuffer(t *testing.T) {
	r := squareRing(true)
	buf := make([]CurveSegment, 0, 16)
	c := AppendCurve(buf, r, CurveRounded)
	if &c.Segments[0] != &buf[:1][0] {
		t.Error("AppendCurve did not reuse the buffer")
	}
	c2 := AppendCurve(c.Segments, r, CurveStraight)
	if len(c2.Segments) != 4 {
		t.Errorf("segments = %d, want 4", len(c2.Segments))
	}
}

func TestSampleCurveEmptyRing(t *testing.T) {
	c := SampleCurve(NewRing(nil, true), CurveRounded)
	if len(c.Segments) != 0 {
		t.Errorf("segments = %d, want 0", len(c.Segments))
	}
}

func TestFlatten(t *testing.T) {
	c := SampleCurve(squareRing(true), CurveRounded)
	pts := Flatten(c, 4, nil)
	if len(pts) != 4*4+1 {
		t.Fatalf("len = %d, want 17", len(pts))
	}
	if pts[0] != c.Start {
		t.Errorf("first = %+v, want Start", pts[0])
	}
	for i, seg := range c.Segments {
		if got := pts[(i+1)*4]; math.Abs(got.X-seg.End.X) > 1e-12 || math.Abs(got.Y-seg.End.Y) > 1e-12 {
			t.Errorf("segment %d endpoint = %+v, want %+v", i, got, seg.End)
		}
	}
}

func TestFlattenStraightStaysOnSegment(t *testing.T) {
	c := Curve{
		Start:    Vec2{X: 0, Y: 0},
		Segments: []CurveSegment{{Control: Vec2{X: 8, Y: 0}, End: Vec2{X: 8, Y: 0}}},
	}
	pts := Flatten(c, 0, nil)
	if len(pts) != 2 {
		t.Fatalf("len = %d, want 2 (steps clamped to 1)", len(pts))
	}
	for _, p := range Flatten(c, 8, nil) {
		if p.Y != 0 || p.X < 0 || p.X > 8 {
			t.Errorf("point %+v left the segment", p)
		}
	}
}

func TestCurveModeString(t *testing.T) {
	if CurveRounded.String() != "rounded" || CurveStraight.String() != "straight" {
		t.Error("unexpected mode names")
	}
	if CurveMode(9).String() != "unknown" {
		t.Error("unknown mode should stringify as unknown")
	}
}
