package game

import (
	"strings"
	"testing"
)

func TestSimLogFilters(t *testing.T) {
	log := NewSimLog(false)
	log.Add(1, "P", "marker", "pellet", "(7,0)", 10)
	log.Add(2, "G0", "state", "change", "waiting → active", 0)
	log.Add(3, "G0", "collision", "ghost_eaten", "bonus=200", 200)
	log.Add(4, "G1", "collision", "ghost_eaten", "bonus=400", 400)

	if got := log.CountCategory("collision", "ghost_eaten"); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	if got := len(log.Filter("collision", "")); got != 2 {
		t.Errorf("category filter = %d entries, want 2", got)
	}
	if got := len(log.FilterAgent("G0")); got != 2 {
		t.Errorf("agent filter = %d entries, want 2", got)
	}

	last, ok := log.LastOf("collision", "ghost_eaten")
	if !ok || last.Tick != 4 || last.NumVal != 400 {
		t.Errorf("LastOf = %+v ok=%v, want the tick-4 entry", last, ok)
	}

	if !log.HasEntry("state", "change", "waiting") {
		t.Error("substring match failed")
	}
	if log.HasEntry("state", "change", "frightened") {
		t.Error("substring match too loose")
	}
}

func TestSimLogVerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "P", "move", "arrive", "(1,1)", 0)
	if len(quiet.Entries()) != 0 {
		t.Error("verbose entry recorded in quiet mode")
	}

	loud := NewSimLog(true)
	loud.AddVerbose(1, "P", "move", "arrive", "(1,1)", 0)
	if len(loud.Entries()) != 1 {
		t.Error("verbose entry dropped in verbose mode")
	}
}

func TestSimLogNilSafety(t *testing.T) {
	var log *SimLog
	log.Add(1, "P", "marker", "pellet", "", 0) // must not panic
	if log.Entries() != nil {
		t.Error("nil log returned entries")
	}
	if log.HasEntry("marker", "", "") {
		t.Error("nil log matched an entry")
	}
	if log.Format() != "" {
		t.Error("nil log formatted output")
	}
}

func TestSimLogEntryFormat(t *testing.T) {
	e := SimLogEntry{Tick: 42, Agent: "G2", Category: "state", Key: "change", Value: "frightened → eaten"}
	s := e.String()
	if !strings.HasPrefix(s, "[T=042]") || !strings.Contains(s, "frightened → eaten") {
		t.Errorf("unexpected format: %q", s)
	}
}
