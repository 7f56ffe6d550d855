package core

import "testing"

// recordingLayer notes the order the engine invokes its hooks in.
type recordingLayer struct {
	calls []string
}

func (l *recordingLayer) OnAttach(e *Engine)             { l.calls = append(l.calls, "attach") }
func (l *recordingLayer) OnDetach(e *Engine)             { l.calls = append(l.calls, "detach") }
func (l *recordingLayer) OnUpdate(e *Engine, dt float64) { l.calls = append(l.calls, "update") }
func (l *recordingLayer) OnRender(e *Engine, alpha float64) {
	l.calls = append(l.calls, "render")
}
func (l *recordingLayer) OnEvent(e *Engine, ev Event) bool { return false }

func TestPushLayerAttachesBeforeUse(t *testing.T) {
	e := &Engine{Input: NewInput()}
	l := &recordingLayer{}

	e.PushLayer(l)
	e.Layers.ForEach(func(layer Layer) { layer.OnUpdate(e, 1.0/60) })
	e.Layers.ForEach(func(layer Layer) { layer.OnRender(e, 0) })

	want := []string{"attach", "update", "render"}
	if len(l.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", l.calls, want)
	}
	for i, c := range want {
		if l.calls[i] != c {
			t.Fatalf("calls = %v, want %v", l.calls, want)
		}
	}
}

func TestPopLayerDetaches(t *testing.T) {
	e := &Engine{Input: NewInput()}
	l := &recordingLayer{}
	e.PushLayer(l)

	got, ok := e.PopLayer()
	if !ok || got != Layer(l) {
		t.Fatalf("PopLayer() = %v, %v", got, ok)
	}
	if l.calls[len(l.calls)-1] != "detach" {
		t.Errorf("calls = %v, want detach last", l.calls)
	}
	if _, ok := e.PopLayer(); ok {
		t.Error("PopLayer() on empty stack reported success")
	}
}
