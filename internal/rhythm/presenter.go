package rhythm

// Handle is an opaque reference to a visual owned by a Presenter.
type Handle int

// Presenter is the write-only sink for visuals. The core never reads
// anything back from it beyond the handle it returns.
type Presenter interface {
	SpawnVisual(style Style, pos Vec2, rotation float64) Handle
	DisposeVisual(h Handle)
}

// Dispatcher applies commands to a Presenter and remembers which visual
// belongs to which object.
type Dispatcher struct {
	presenter Presenter
	handles   map[ObjectID]Handle
}

// NewDispatcher returns a dispatcher that drives p.
func NewDispatcher(p Presenter) *Dispatcher {
	return &Dispatcher{
		presenter: p,
		handles:   make(map[ObjectID]Handle),
	}
}

// Apply forwards cmds to the presenter in order. Disposing an object that
// has no visual is ignored.
func (d *Dispatcher) Apply(cmds []Command) {
	for _, c := range cmds {
		switch c.Kind {
		case CommandSpawn:
			d.handles[c.Object] = d.presenter.SpawnVisual(c.Style, c.Position, c.Rotation)
		case CommandDispose:
			h, ok := d.handles[c.Object]
			if !ok {
				continue
			}
			delete(d.handles, c.Object)
			d.presenter.DisposeVisual(h)
		}
	}
}

// Handle returns the visual attached to id.
func (d *Dispatcher) Handle(id ObjectID) (Handle, bool) {
	h, ok := d.handles[id]
	return h, ok
}

// Len returns the number of visuals currently alive.
func (d *Dispatcher) Len() int {
	return len(d.handles)
}

// Reset disposes every visual still alive.
func (d *Dispatcher) Reset() {
	for id, h := range d.handles {
		d.presenter.DisposeVisual(h)
		delete(d.handles, id)
	}
}
