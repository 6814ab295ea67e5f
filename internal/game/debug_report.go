package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport renders the full engine state as text, for pasting into
// bug reports.
func DebugReport(s *Session) string {
	var sb strings.Builder
	snap := s.Snapshot()

	fmt.Fprintf(&sb, "=== maze-pacman engine state (T=%d) ===\n", snap.Tick)
	fmt.Fprintf(&sb, "phase=%s score=%d lives=%d\n", snap.Phase, snap.Player.Score, snap.Player.Lives)
	fmt.Fprintf(&sb, "pellets left: %d/%d (power: %d)\n",
		snap.PelletsLeft, s.initialPellets, len(s.powerPellets))
	fmt.Fprintf(&sb, "frightened=%.2fs ready=%.2fs siren_tier=%d ghost_mult=%.3f\n",
		snap.FrightenedTimer, snap.ReadyTimer, snap.SirenTier, s.ghostSpeedMult)
	if snap.Cherry != nil {
		fmt.Fprintf(&sb, "cherry at %s\n", snap.Cherry)
	}

	fmt.Fprintf(&sb, "player: cell=%s pos=(%.1f,%.1f) dir=%s moving=%v\n",
		snap.Player.Cell, snap.Player.X, snap.Player.Y, snap.Player.Dir, snap.Player.Moving)

	for _, gh := range snap.Ghosts {
		line := fmt.Sprintf("G%d %-6s %-10s cell=%s dir=%-5s moving=%v",
			gh.ID, gh.Personality, gh.State, gh.Cell, gh.Dir, gh.Moving)
		if gh.State == GhostActive {
			tc := targetContext{
				grid:      s.grid,
				ghost:     s.ghosts[gh.ID],
				player:    s.player.cell,
				playerDir: s.player.dir,
				chaser:    s.ghosts[PersonalityChase].cell,
			}
			line += fmt.Sprintf(" target=%s", targetStrategies[gh.Personality](tc))
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CopyDebugReport puts the report on the system clipboard.
func CopyDebugReport(s *Session) error {
	return clipboard.WriteAll(DebugReport(s))
}
