package search

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[S comparable, A any] struct {
	Current   S
	Open      map[S]bool
	Closed    map[S]bool
	Done      bool
	Found     bool
	Path      []S
	Actions   []A
	Cost      float64
	StepIndex int
}

// Stepper drives any strategy one node expansion at a time.
type Stepper[S comparable, A any] struct {
	engine    *engine[S, A]
	stepCount int
}

// NewStepper creates a stepper using the same expansion loop as Run.
func NewStepper[S comparable, A any](
	strategy Strategy,
	problem Problem[S, A],
	heuristic Heuristic[S, A],
	options ...Option,
) (*Stepper[S, A], error) {
	searchEngine, err := newEngine(strategy, problem, heuristic, applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &Stepper[S, A]{engine: searchEngine}, nil
}

// Done reports whether the search has finished.
func (s *Stepper[S, A]) Done() bool { return s.engine.done }

// Result returns the final result once Done reports true.
func (s *Stepper[S, A]) Result() (Result[S, A], bool) {
	return s.engine.result, s.engine.done
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done further calls return the final snapshot again.
func (s *Stepper[S, A]) Step() (StepSnapshot[S, A], error) {
	if !s.engine.done {
		s.stepCount++
		if err := s.engine.step(); err != nil {
			s.engine.done = true
			return StepSnapshot[S, A]{Done: true, StepIndex: s.stepCount}, err
		}
	}

	snapshot := StepSnapshot[S, A]{
		Open:      s.openSetToBoolMap(),
		Closed:    copyBoolMap(s.engine.explored),
		Done:      s.engine.done,
		Found:     s.engine.result.Found,
		StepIndex: s.stepCount,
	}
	if s.engine.current != nil {
		snapshot.Current = s.engine.current.state
		snapshot.Cost = s.engine.current.cost
	}
	if snapshot.Found {
		snapshot.Path = s.engine.result.Path
		snapshot.Actions = s.engine.result.Actions
		snapshot.Cost = s.engine.result.TotalCost
	}
	return snapshot, nil
}

func (s *Stepper[S, A]) openSetToBoolMap() map[S]bool {
	states := s.engine.frontier.States()
	m := make(map[S]bool, len(states))
	for _, state := range states {
		m[state] = true
	}
	return m
}

func copyBoolMap[T comparable](m map[T]struct{}) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k := range m {
		c[k] = true
	}
	return c
}
