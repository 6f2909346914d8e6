package rect

import "testing"

func TestParseHandle(t *testing.T) {
	for _, h := range AllHandles {
		got, err := ParseHandle(" " + string(h) + " ")
		if err != nil || got != h {
			t.Fatalf("ParseHandle(%q)=%q, %v", h, got, err)
		}
	}
	if _, err := ParseHandle("mm"); err == nil {
		t.Fatalf("expected error for mm")
	}
	if _, err := ParseHandle(""); err == nil {
		t.Fatalf("expected error for empty handle")
	}
}

func TestHandleAxes(t *testing.T) {
	tests := []struct {
		handle Handle
		corner bool
		onX    bool
		onY    bool
	}{
		{HandleTopLeft, true, true, true},
		{HandleTopMiddle, false, false, true},
		{HandleTopRight, true, true, true},
		{HandleMiddleRight, false, true, false},
		{HandleBottomRight, true, true, true},
		{HandleBottomMiddle, false, false, true},
		{HandleBottomLeft, true, true, true},
		{HandleMiddleLeft, false, true, false},
		{HandleNone, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.handle.IsCorner(); got != tt.corner {
			t.Fatalf("%q IsCorner=%v want %v", tt.handle, got, tt.corner)
		}
		if got := tt.handle.MovesX(); got != tt.onX {
			t.Fatalf("%q MovesX=%v want %v", tt.handle, got, tt.onX)
		}
		if got := tt.handle.MovesY(); got != tt.onY {
			t.Fatalf("%q MovesY=%v want %v", tt.handle, got, tt.onY)
		}
	}
}

func TestLockedHandleUsesColumnEdge(t *testing.T) {
	tests := map[Handle]Handle{
		HandleTopLeft:      HandleMiddleLeft,
		HandleTopRight:     HandleMiddleRight,
		HandleBottomRight:  HandleMiddleRight,
		HandleBottomLeft:   HandleMiddleLeft,
		HandleTopMiddle:    HandleTopMiddle,
		HandleMiddleRight:  HandleMiddleRight,
		HandleBottomMiddle: HandleBottomMiddle,
		HandleMiddleLeft:   HandleMiddleLeft,
	}
	for in, want := range tests {
		if got := lockedHandle(in); got != want {
			t.Fatalf("lockedHandle(%q)=%q want %q", in, got, want)
		}
	}
}

func TestParseAxis(t *testing.T) {
	tests := map[string]Axis{"": AxisBoth, "x": AxisX, "Y": AxisY, "both": AxisBoth}
	for in, want := range tests {
		got, err := ParseAxis(in)
		if err != nil || got != want {
			t.Fatalf("ParseAxis(%q)=%q, %v want %q", in, got, err, want)
		}
	}
	if _, err := ParseAxis("z"); err == nil {
		t.Fatalf("expected error for z")
	}
}

func TestStateString(t *testing.T) {
	if StateIdle.String() != "idle" || StateDragging.String() != "dragging" || StateResizing.String() != "resizing" {
		t.Fatalf("unexpected state names")
	}
}
