package main

import (
	"strings"
	"testing"
)

func TestRenderFooterTwoLines(t *testing.T) {
	st := FooterState{
		Mode:          CmdNone,
		Backend:       "http://localhost:9876",
		FilterOn:      true,
		ZoomLabel:     "set",
		Segment:       3,
		TotalSegments: 12,
		StatusMessage: "hello",
		Legend:        "(? help)",
	}
	out := RenderFooter(120, st, DefaultFooterStyles())

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("footer has %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Seg 3/12") {
		t.Errorf("control bar missing segment position: %q", lines[0])
	}
	if !strings.Contains(lines[0], "[FILTER: on]") {
		t.Errorf("control bar missing filter state: %q", lines[0])
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("status bar missing message: %q", lines[1])
	}
}

func TestRenderFooterZeroWidth(t *testing.T) {
	if out := RenderFooter(0, FooterState{}, DefaultFooterStyles()); out != "" {
		t.Errorf("zero width footer = %q, want empty", out)
	}
}

func TestCommandLabel(t *testing.T) {
	if got := commandLabel(CmdJump); got != "JUMP" {
		t.Errorf("commandLabel(CmdJump) = %q", got)
	}
	if got := commandLabel(CmdNone); got != "NORMAL" {
		t.Errorf("commandLabel(CmdNone) = %q", got)
	}
}
