package models

import (
	"testing"
)

func TestReplyResult_Usable(t *testing.T) {
	tests := []struct {
		name   string
		result *ReplyResult
		want   bool
	}{
		{"nil result", nil, false},
		{"missing reply", &ReplyResult{Crisis: true}, false},
		{"empty reply", &ReplyResult{HasReply: true, Reply: ""}, false},
		{"whitespace reply", &ReplyResult{HasReply: true, Reply: "  \n"}, false},
		{"reply present", &ReplyResult{HasReply: true, Reply: "hello"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Usable(); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuickActions(t *testing.T) {
	actions := QuickActions()
	if len(actions) != 3 {
		t.Fatalf("QuickActions() returned %d actions, expected 3", len(actions))
	}

	seen := make(map[string]bool)
	for _, a := range actions {
		if a.Text == "" {
			t.Errorf("action %s has empty text", a.ID)
		}
		if seen[a.ID] {
			t.Errorf("duplicate action id %s", a.ID)
		}
		seen[a.ID] = true
	}

	// Mutating the copy must not affect the package list
	actions[0].Text = "changed"
	if QuickActions()[0].Text == "changed" {
		t.Error("QuickActions() should return a copy")
	}
}

func TestQuickActionByID(t *testing.T) {
	tests := []struct {
		id     string
		wantOK bool
	}{
		{"breathe", true},
		{" Ground ", true},
		{"SMALL", true},
		{"dance", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, ok := QuickActionByID(tt.id)
			if ok != tt.wantOK {
				t.Errorf("QuickActionByID(%q) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
		})
	}
}

func TestMoodByLabel(t *testing.T) {
	m, ok := MoodByLabel("Anxious")
	if !ok {
		t.Fatal("expected anxious to be a known mood")
	}
	if m.Label != "anxious" {
		t.Errorf("Label = %s, want anxious", m.Label)
	}

	if _, ok := MoodByLabel("bored"); ok {
		t.Error("bored should not be a known mood")
	}
}

func TestMoodMessage(t *testing.T) {
	if got := MoodMessage("sad"); got != "I'm feeling sad" {
		t.Errorf("MoodMessage() = %q", got)
	}
}

func TestSenderLabel(t *testing.T) {
	if SenderUser.Label() != "You" {
		t.Errorf("SenderUser.Label() = %s", SenderUser.Label())
	}
	if SenderAssistant.Label() != "MindMate" {
		t.Errorf("SenderAssistant.Label() = %s", SenderAssistant.Label())
	}
}
