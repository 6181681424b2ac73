package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestAttrMerge(t *testing.T) {
	attr := AttrRegular.Merge(Bold)
	if attr&Bold == 0 {
		t.Error("Bold not set")
	}
	attr = attr.Merge(Underline)
	if attr&Bold == 0 || attr&Underline == 0 {
		t.Error("Merge should accumulate attributes")
	}
}

func TestTranslateKeyRunes(t *testing.T) {
	ev := translateKey(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false)
	if ev.Type != Rune || ev.Char != 'x' {
		t.Errorf("Expected Rune 'x', got %v %q", ev.Type, ev.Char)
	}

	ev = translateKey(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), false)
	if ev.Type != Esc || ev.Char != 27 {
		t.Errorf("Expected Esc 27, got %v %d", ev.Type, ev.Char)
	}

	ev = translateKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false)
	if ev.Type != Enter {
		t.Errorf("Expected Enter, got %v", ev.Type)
	}
}

func TestTranslateKeyKeypad(t *testing.T) {
	arrows := map[tcell.Key]EventType{
		tcell.KeyUp:    Up,
		tcell.KeyDown:  Down,
		tcell.KeyLeft:  Left,
		tcell.KeyRight: Right,
	}
	for key, expected := range arrows {
		ev := translateKey(tcell.NewEventKey(key, 0, tcell.ModNone), true)
		if ev.Type != expected {
			t.Errorf("With keypad, expected %v for %v, got %v", expected, key, ev.Type)
		}
		ev = translateKey(tcell.NewEventKey(key, 0, tcell.ModNone), false)
		if ev.Type != Invalid {
			t.Errorf("Without keypad, expected Invalid for %v, got %v", key, ev.Type)
		}
	}

	// Esc and Enter are delivered regardless of keypad mode
	if translateKey(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), false).Type != Esc {
		t.Error("Esc should not depend on keypad mode")
	}
}

func TestTestRendererLifecycle(t *testing.T) {
	r := NewTestRenderer()
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	if err := r.Init(); err != ErrScreenInUse {
		t.Errorf("Expected ErrScreenInUse, got %v", err)
	}
	r.Close()
	r.Close() // idempotent
	if r.InitCount() != 1 || r.CloseCount() != 1 {
		t.Errorf("Invalid counts: %d inits, %d closes", r.InitCount(), r.CloseCount())
	}
}

func TestTestRendererKeys(t *testing.T) {
	r := NewTestRenderer()
	if ev := r.GetChar(); ev.Type != None {
		t.Errorf("Expected None on empty queue, got %v", ev.Type)
	}
	r.QueueKeys(Event{Type: Rune, Char: 'a'}, Event{Type: Esc, Char: 27})
	if ev := r.GetChar(); ev.Type != Rune || ev.Char != 'a' {
		t.Errorf("Invalid first event: %v", ev)
	}
	if ev := r.GetChar(); ev.Type != Esc {
		t.Errorf("Invalid second event: %v", ev)
	}
	if ev := r.GetChar(); ev.Type != None {
		t.Errorf("Expected None after queue is drained, got %v", ev.Type)
	}
}
