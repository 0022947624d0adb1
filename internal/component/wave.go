// internal/component/wave.go
package component

// WavePhase — фаза цикла волн
type WavePhase uint8

const (
	PhaseIdle WavePhase = iota
	PhaseBuild
	PhaseCombat
	PhaseAllCleared
)

func (p WavePhase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseBuild:
		return "BUILD"
	case PhaseCombat:
		return "COMBAT"
	case PhaseAllCleared:
		return "ALL_CLEARED"
	}
	return "UNKNOWN"
}
