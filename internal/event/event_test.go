package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

// quitter отписывается от всего при первом же событии
type quitter struct {
	d     *Dispatcher
	types []EventType
	calls int
}

func (q *quitter) OnEvent(e Event) {
	q.calls++
	q.d.Unsubscribe(q, q.types...)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, WaveCleared)
	d.Subscribe(b, WaveCleared, WaveStarted)

	d.Dispatch(Event{Type: WaveCleared, Data: WaveEvent{Wave: 2, Reward: 150}})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	assert.Equal(t, WaveEvent{Wave: 2, Reward: 150}, a.got[0].Data)
	assert.Equal(t, 1, d.Listeners(WaveStarted))
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(r, EnemySpawned, WaveStarted)
	d.Unsubscribe(r, EnemySpawned)

	d.Dispatch(Event{Type: EnemySpawned})
	d.Dispatch(Event{Type: WaveStarted})
	assert.Len(t, r.got, 1)
	assert.Zero(t, d.Listeners(EnemySpawned))

	d.Unsubscribe(r, WaveCleared) // не подписан, ничего не происходит
	assert.Equal(t, 1, d.Listeners(WaveStarted))
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	q := &quitter{d: d, types: []EventType{CombatantDestroyed}}
	after := &recorder{}
	d.Subscribe(q, CombatantDestroyed)
	d.Subscribe(after, CombatantDestroyed)

	d.Dispatch(Event{Type: CombatantDestroyed})
	assert.Equal(t, 1, q.calls)
	assert.Len(t, after.got, 1, "listener after the one that left must still be called")

	d.Dispatch(Event{Type: CombatantDestroyed})
	assert.Equal(t, 1, q.calls)
	assert.Len(t, after.got, 2)
}

func TestSubscribeDuringDispatchStartsNextTime(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	joiner := &joiner{d: d, late: late}
	d.Subscribe(joiner, BuildStarted)

	d.Dispatch(Event{Type: BuildStarted})
	assert.Empty(t, late.got)

	d.Dispatch(Event{Type: BuildStarted})
	assert.Len(t, late.got, 1)
}

type joiner struct {
	d    *Dispatcher
	late *recorder
	done bool
}

func (j *joiner) OnEvent(e Event) {
	if !j.done {
		j.done = true
		j.d.Subscribe(j.late, e.Type)
	}
}
