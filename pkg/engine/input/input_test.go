package input

import (
	"io"
	"strings"
	"testing"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"w", []string{"w"}},
		{"\x1b[A\x1b[B\x1bOC\x1bOD", []string{KeyArrowUp, KeyArrowDown, KeyArrowRight, KeyArrowLeft}},
		{"\r\n", []string{KeyEnter, KeyEnter}},
		{"\x03", []string{KeyInterrupt}},
		{"\x1bx", []string{KeyEscape}},
		{"\x1b[Zq", []string{"", "q"}},
		{"\x01", []string{""}},
	}
	for _, tt := range tests {
		r := strings.NewReader(tt.in)
		for i, want := range tt.want {
			got, err := ReadKey(r)
			if err != nil {
				t.Fatalf("ReadKey(%q) #%d error: %v", tt.in, i, err)
			}
			if got != want {
				t.Errorf("ReadKey(%q) #%d = %q, want %q", tt.in, i, got, want)
			}
		}
	}
}

func TestReadKey_EOF(t *testing.T) {
	if _, err := ReadKey(strings.NewReader("")); err != io.EOF {
		t.Errorf("ReadKey(empty) error = %v, want io.EOF", err)
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{KeyArrowUp, ActionPanNorth},
		{"s", ActionPanSouth},
		{"h", ActionPanWest},
		{KeyArrowRight, ActionPanEast},
		{"q", ActionQuit},
		{KeyInterrupt, ActionQuit},
		{"z", ActionNone},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.code); got != tt.want {
			t.Errorf("ActionFor(%q) = %s, want %s", tt.code, ActionName(got), ActionName(tt.want))
		}
	}
}

func TestDirection(t *testing.T) {
	if dx, dy := Direction(ActionPanNorth); dx != 0 || dy != 1 {
		t.Errorf("Direction(PanNorth) = (%d, %d), want (0, 1)", dx, dy)
	}
	if dx, dy := Direction(ActionQuit); dx != 0 || dy != 0 {
		t.Errorf("Direction(Quit) = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestGetBindingsByAction(t *testing.T) {
	got := GetBindingsByAction()[ActionQuit]
	want := []string{KeyInterrupt, KeyEscape, "q"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("quit bindings = %v, want %v", got, want)
	}
}
