// Package wizard implements a strictly-ordered, forward-gated,
// backward-permissive multi-step flow ending in a terminal
// confirmation. The booking flow is one instantiation; any multi-step
// form can configure its own steps and gates.
package wizard

import "errors"

var (
	// ErrValidationBlocked is returned when a transition is attempted
	// while its gating predicate is false. The UI is expected to have
	// disabled the action already, but the engine refuses on its own.
	ErrValidationBlocked = errors.New("step data does not satisfy the gating predicate")

	// ErrComplete is returned for any transition other than Restart
	// attempted after the wizard reached its terminal confirmation.
	ErrComplete = errors.New("wizard is already complete")

	// ErrNotTerminal is returned when Confirm is called before the
	// final step.
	ErrNotTerminal = errors.New("confirm is only valid at the terminal step")
)

// GateFunc reports whether a step's collected data allows advancing
// past it. Gates must be derivable purely from the step data, with no
// hidden state.
type GateFunc func(data StepData) bool

// StepData maps a step number to the fields collected at that step.
type StepData map[int]map[string]string

// Get returns a collected field value, or "" when absent.
func (d StepData) Get(step int, key string) string {
	if fields, ok := d[step]; ok {
		return fields[key]
	}
	return ""
}

func (d StepData) clone() StepData {
	out := make(StepData, len(d))
	for step, fields := range d {
		copied := make(map[string]string, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		out[step] = copied
	}
	return out
}

// Step describes one stage of the flow. A nil Gate means the step
// never blocks advancement.
type Step struct {
	Name string
	Gate GateFunc
}

// Config wires a wizard instance.
type Config struct {
	Steps []Step

	// ProviderStep and ProviderJump describe the one asymmetric
	// transition of the booking flow: selecting a provider both records
	// the choice and jumps directly to ProviderJump, bypassing the
	// normal single-step advance.
	ProviderStep int
	ProviderJump int
	ProviderKey  string

	// OnComplete receives the full accumulated data when the terminal
	// confirmation succeeds.
	OnComplete func(StepData)
}

// Wizard drives a single flow instance. Steps are 1-indexed; the
// virtual Complete state is only reachable via Confirm from the last
// step, and only Restart leaves it.
type Wizard struct {
	cfg      Config
	current  int
	data     StepData
	complete bool
}

// New creates a wizard positioned at step 1 with empty data.
func New(cfg Config) *Wizard {
	return &Wizard{
		cfg:     cfg,
		current: 1,
		data:    make(StepData),
	}
}

// CurrentStep returns the 1-indexed current step.
func (w *Wizard) CurrentStep() int { return w.current }

// IsComplete reports whether the terminal confirmation succeeded.
func (w *Wizard) IsComplete() bool { return w.complete }

// Data returns a copy of everything collected so far.
func (w *Wizard) Data() StepData { return w.data.clone() }

// SetField merges a value into a step's collected data. No validation
// happens at write time; gates are evaluated on transitions.
func (w *Wizard) SetField(step int, key, value string) error {
	if w.complete {
		return ErrComplete
	}
	if step < 1 || step > len(w.cfg.Steps) {
		return errors.New("step out of range")
	}
	if w.data[step] == nil {
		w.data[step] = make(map[string]string)
	}
	w.data[step][key] = value
	return nil
}

// CanAdvance evaluates the gating predicate for a step against the
// currently collected data.
func (w *Wizard) CanAdvance(step int) bool {
	if step < 1 || step > len(w.cfg.Steps) {
		return false
	}
	gate := w.cfg.Steps[step-1].Gate
	return gate == nil || gate(w.data)
}

// Advance moves forward one step if the current step's gate allows it.
// The step is capped at the terminal step; Confirm is the only way out
// of it.
func (w *Wizard) Advance() error {
	if w.complete {
		return ErrComplete
	}
	if !w.CanAdvance(w.current) {
		return ErrValidationBlocked
	}
	if w.current < len(w.cfg.Steps) {
		w.current++
	}
	return nil
}

// Retreat moves back one step. Always permitted above step 1,
// regardless of data validity; a no-op at step 1. Data collected at
// later steps is retained, matching the booking flow's behavior of
// keeping a chosen provider when the user steps back.
func (w *Wizard) Retreat() error {
	if w.complete {
		return ErrComplete
	}
	if w.current > 1 {
		w.current--
	}
	return nil
}

// SelectProvider records the provider choice and jumps directly to the
// configured target step, skipping any step in between. This is a
// named transition of its own, distinct from Advance. It is only
// accepted while positioned at the provider step, so every earlier
// gate has already passed by the time the jump happens.
func (w *Wizard) SelectProvider(providerID string) error {
	if w.complete {
		return ErrComplete
	}
	if w.cfg.ProviderStep == 0 {
		return errors.New("flow has no provider selection step")
	}
	if w.current != w.cfg.ProviderStep {
		return ErrValidationBlocked
	}
	if w.data[w.cfg.ProviderStep] == nil {
		w.data[w.cfg.ProviderStep] = make(map[string]string)
	}
	w.data[w.cfg.ProviderStep][w.cfg.ProviderKey] = providerID
	w.current = w.cfg.ProviderJump
	return nil
}

// Confirm finishes the flow. Only valid at the terminal step and only
// when that step's gate passes; on success the accumulated data is
// emitted to the completion handler.
func (w *Wizard) Confirm() error {
	if w.complete {
		return ErrComplete
	}
	if w.current != len(w.cfg.Steps) {
		return ErrNotTerminal
	}
	if !w.CanAdvance(w.current) {
		return ErrValidationBlocked
	}
	w.complete = true
	if w.cfg.OnComplete != nil {
		w.cfg.OnComplete(w.data.clone())
	}
	return nil
}

// Restart returns the wizard to step 1 with empty data, clearing the
// complete flag. It is the only transition out of the Complete state.
func (w *Wizard) Restart() {
	w.current = 1
	w.data = make(StepData)
	w.complete = false
}
