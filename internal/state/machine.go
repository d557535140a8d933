package state

// maxChained bounds how many transitions enter/exit hooks may trigger in a
// single frame.
const maxChained = 8

// Rule is a named per-frame or hook function.
type Rule[C any] struct {
	Name string
	Run  func(C)
}

// Machine runs the rules registered for the current state and applies
// transitions. It is driven from a single goroutine.
type Machine[C any] struct {
	current   State
	next      State
	hasNext   bool
	started   bool
	rules     map[State][]Rule[C]
	enter     map[State][]Rule[C]
	exit      map[State][]Rule[C]
	count     int
	onTransit func(from, to State)
}

// NewMachine creates a machine with no registered rules.
func NewMachine[C any]() *Machine[C] {
	return &Machine[C]{
		rules: make(map[State][]Rule[C]),
		enter: make(map[State][]Rule[C]),
		exit:  make(map[State][]Rule[C]),
	}
}

// Register appends a per-frame rule for s. Rules run in registration order.
func (m *Machine[C]) Register(s State, name string, fn func(C)) *Machine[C] {
	m.rules[s] = append(m.rules[s], Rule[C]{Name: name, Run: fn})
	return m
}

// OnEnter appends a hook run when s becomes current.
func (m *Machine[C]) OnEnter(s State, name string, fn func(C)) *Machine[C] {
	m.enter[s] = append(m.enter[s], Rule[C]{Name: name, Run: fn})
	return m
}

// OnExit appends a hook run when s stops being current.
func (m *Machine[C]) OnExit(s State, name string, fn func(C)) *Machine[C] {
	m.exit[s] = append(m.exit[s], Rule[C]{Name: name, Run: fn})
	return m
}

// OnTransition sets a callback invoked after every applied transition.
func (m *Machine[C]) OnTransition(fn func(from, to State)) {
	m.onTransit = fn
}

// RuleNames lists the per-frame rules registered for s.
func (m *Machine[C]) RuleNames(s State) []string {
	names := make([]string, 0, len(m.rules[s]))
	for _, r := range m.rules[s] {
		names = append(names, r.Name)
	}
	return names
}

// Current returns the active state
func (m *Machine[C]) Current() State {
	return m.current
}

// Set requests a transition to next at the end of the frame. A later Set in
// the same frame replaces an earlier one.
func (m *Machine[C]) Set(next State) {
	m.next = next
	m.hasNext = true
}

// Pending returns the requested transition, if any.
func (m *Machine[C]) Pending() (State, bool) {
	return m.next, m.hasNext
}

// Transitions returns how many transitions have been applied.
func (m *Machine[C]) Transitions() int {
	return m.count
}

// Start makes initial current and runs its enter hooks.
func (m *Machine[C]) Start(ctx C, initial State) {
	m.current = initial
	m.started = true
	m.hasNext = false
	run(ctx, m.enter[initial])
	m.applyPending(ctx)
}

// Update runs the current state's rules, then applies a pending transition.
func (m *Machine[C]) Update(ctx C) {
	if !m.started {
		return
	}
	run(ctx, m.rules[m.current])
	m.applyPending(ctx)
}

func (m *Machine[C]) applyPending(ctx C) {
	for i := 0; i < maxChained && m.hasNext; i++ {
		from, to := m.current, m.next
		m.hasNext = false

		run(ctx, m.exit[from])
		m.current = to
		m.count++
		run(ctx, m.enter[to])

		if m.onTransit != nil {
			m.onTransit(from, to)
		}
	}
}

func run[C any](ctx C, rules []Rule[C]) {
	for _, r := range rules {
		r.Run(ctx)
	}
}
