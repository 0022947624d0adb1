package state

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeState struct {
	name  string
	trace *[]string
	ticks float64
}

func (f *fakeState) Enter()                    { *f.trace = append(*f.trace, "enter "+f.name) }
func (f *fakeState) Update(deltaTime float64)  { f.ticks += deltaTime }
func (f *fakeState) Draw(screen *ebiten.Image) {}
func (f *fakeState) Exit()                     { *f.trace = append(*f.trace, "exit "+f.name) }

func TestStateMachine_Transitions(t *testing.T) {
	var trace []string
	sm := NewStateMachine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	a := &fakeState{name: "a", trace: &trace}
	b := &fakeState{name: "b", trace: &trace}

	sm.Update(1) // без состояния ничего не происходит
	sm.SetState(a)
	sm.Update(0.5)
	sm.SetState(b)
	sm.Update(0.25)
	sm.SetState(nil)

	assert.Equal(t, []string{"enter a", "exit a", "enter b", "exit b"}, trace)
	assert.Equal(t, 0.5, a.ticks)
	assert.Equal(t, 0.25, b.ticks)
	assert.Nil(t, sm.Current())
}
