package core

import (
	"strings"
	"testing"
)

func TestEventRingOrder(t *testing.T) {
	ClearEvents()
	defer ClearEvents()

	SetTime(100)
	RecordEvent(EvtModeRequest, 1, 0)
	SetTime(200)
	RecordEvent(EvtModeEnter, 1, 0)

	events := Events()
	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(events))
	}
	if events[0].Kind != EvtModeRequest || events[0].Clock != 100 {
		t.Errorf("Expected first event MODE_REQ at 100, got %s at %d",
			EventName(events[0].Kind), events[0].Clock)
	}
	if events[1].Kind != EvtModeEnter || events[1].Clock != 200 {
		t.Errorf("Expected second event MODE_ENTER at 200, got %s at %d",
			EventName(events[1].Kind), events[1].Clock)
	}
}

func TestEventRingWraps(t *testing.T) {
	ClearEvents()
	defer ClearEvents()

	for i := uint32(0); i < EventRingSize+5; i++ {
		RecordEvent(EvtLevelStart, i, 0)
	}

	events := Events()
	if len(events) != EventRingSize {
		t.Fatalf("Expected %d events, got %d", EventRingSize, len(events))
	}
	if events[0].Value1 != 5 {
		t.Errorf("Expected oldest surviving event to be 5, got %d", events[0].Value1)
	}
	if events[len(events)-1].Value1 != EventRingSize+4 {
		t.Errorf("Expected newest event to be %d, got %d", EventRingSize+4, events[len(events)-1].Value1)
	}
}

func TestDumpEventsIgnoresDebugFlag(t *testing.T) {
	ClearEvents()
	defer ClearEvents()

	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	SetDebugEnabled(false)

	RecordEvent(EvtGameOver, 1230, 990)
	DumpEvents()

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "GAME_OVER") {
		t.Errorf("Expected GAME_OVER in dump, got:\n%s", joined)
	}
	if !strings.Contains(joined, "v1=1230 v2=990") {
		t.Errorf("Expected values in dump, got:\n%s", joined)
	}

	lines = nil
	DebugPrintln("[TEST] hidden")
	if len(lines) != 0 {
		t.Errorf("Expected DebugPrintln to be silent when disabled, got %v", lines)
	}
}
