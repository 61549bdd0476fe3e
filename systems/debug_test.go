package systems

import (
	"strings"
	"testing"

	cfg "github.com/automoto/dragon-arena/config"
	"github.com/automoto/dragon-arena/shared/gamemath"
)

func TestDebugLines(t *testing.T) {
	e := newTestECS()
	spawnTestKnight(e, gamemath.V3(0, -14, 25), cfg.Idle)
	dragon := spawnTestDragon(e, gamemath.V3(0, -14, 0), cfg.Dragon.Health)
	ApplyDamage(e, dragon, 60)

	text := strings.Join(DebugLines(e), "\n")
	for _, want := range []string{"knight 0.0 -14.0 25.0", "distance 25.0 in range true", "damage text 1/10", "state idle"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected overlay to contain %q, got:\n%s", want, text)
		}
	}
}

func TestDebugLinesAbsentEntities(t *testing.T) {
	text := strings.Join(DebugLines(newTestECS()), "\n")
	for _, want := range []string{"knight absent", "dragon absent"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected overlay to contain %q, got:\n%s", want, text)
		}
	}
}
