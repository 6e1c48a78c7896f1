package assistant

import (
	"strings"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"When do I need a break?", "break"},
		{"How much national insurance do I pay?", "ni"},
		{"what is the daily driving limit", "daily"},
		{"what is the weekly 56 hour rule", "weekly"},
		{"Is overtime paid extra?", "overtime"},
		{"hello", "greeting"},
	}
	for _, tt := range tests {
		got, ok := Match(tt.question)
		if !ok || got != tt.want {
			t.Errorf("Match(%q) = %q, %v; want %q", tt.question, got, ok, tt.want)
		}
	}
}

func TestAnswerFallback(t *testing.T) {
	got := Answer("what's the weather like on the M6")
	if got != fallback {
		t.Errorf("Answer = %q, want fallback", got)
	}
	if !strings.Contains(Answer("tax?"), "flat rate") {
		t.Error("expected the tax answer for a tax question")
	}
}
