package util

import "testing"

func TestStringWidth(t *testing.T) {
	w := StringWidth("─")
	if w != 1 {
		t.Errorf("Expected width 1, got %d", w)
	}
	if StringWidth("abc") != 3 {
		t.Error("Invalid width")
	}
	if StringWidth("한글") != 4 {
		t.Error("Invalid wide-character width")
	}
}

func TestMax(t *testing.T) {
	if Max(-2, 5) != 5 {
		t.Error("Invalid result")
	}
	if Max(2, -5) != 2 {
		t.Error("Invalid result")
	}
}

func TestMin(t *testing.T) {
	if Min(-2, 5) != -2 {
		t.Error("Invalid result")
	}
	if Min(2, -5) != -5 {
		t.Error("Invalid result")
	}
}

func TestConstrain(t *testing.T) {
	if Constrain(-3, -1, 3) != -1 {
		t.Error("Expected", -1)
	}
	if Constrain(2, -1, 3) != 2 {
		t.Error("Expected", 2)
	}
	if Constrain(5, -1, 3) != 3 {
		t.Error("Expected", 3)
	}
}
