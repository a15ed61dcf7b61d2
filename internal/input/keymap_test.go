package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCtrlChordsMapToActions(t *testing.T) {
	p := NewInputProcessor()
	cases := []struct {
		key  tcell.Key
		want Action
	}{
		{tcell.KeyCtrlQ, ActionQuit},
		{tcell.KeyCtrlZ, ActionUndo},
		{tcell.KeyCtrlY, ActionRedo},
		{tcell.KeyCtrlC, ActionCopy},
		{tcell.KeyCtrlX, ActionCut},
		{tcell.KeyCtrlV, ActionPaste},
		{tcell.KeyCtrlN, ActionClearCanvas},
		{tcell.KeyCtrlS, ActionExport},
	}
	for _, tc := range cases {
		ev := tcell.NewEventKey(tc.key, 0, tcell.ModCtrl)
		got := p.ProcessEvent(ev)
		if got.Action != tc.want {
			t.Errorf("key %v: got action %v, want %v", tc.key, got.Action, tc.want)
		}
	}
}

func TestPlainKeysMapToActions(t *testing.T) {
	p := NewInputProcessor()
	cases := []struct {
		key  tcell.Key
		want Action
	}{
		{tcell.KeyEscape, ActionCancel},
		{tcell.KeyEnter, ActionInsertNewLine},
		{tcell.KeyBackspace2, ActionBackspace},
		{tcell.KeyDelete, ActionDeleteForward},
	}
	for _, tc := range cases {
		ev := tcell.NewEventKey(tc.key, 0, tcell.ModNone)
		got := p.ProcessEvent(ev)
		if got.Action != tc.want {
			t.Errorf("key %v: got action %v, want %v", tc.key, got.Action, tc.want)
		}
	}
}

func TestRunesComeBackAsTypeRune(t *testing.T) {
	p := NewInputProcessor()
	ev := tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)
	got := p.ProcessEvent(ev)
	if got.Action != ActionTypeRune || got.Rune != 'r' {
		t.Errorf("got %+v, want ActionTypeRune with rune 'r'", got)
	}

	shifted := tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift)
	got = p.ProcessEvent(shifted)
	if got.Action != ActionTypeRune || got.Rune != 'R' {
		t.Errorf("got %+v, want ActionTypeRune with rune 'R'", got)
	}
}

func TestUnmappedChordIsUnknown(t *testing.T) {
	p := NewInputProcessor()
	ev := tcell.NewEventKey(tcell.KeyCtrlG, 0, tcell.ModCtrl)
	if got := p.ProcessEvent(ev); got.Action != ActionUnknown {
		t.Errorf("got action %v, want ActionUnknown", got.Action)
	}
}
