package checkout

import (
	"errors"
	"time"
)

var ErrNotAtFinalStep = errors.New("checkout can only be submitted from the final step")

// Wizard is the three step checkout form.
//
// Fields keeps what the customer typed on the contact and delivery steps so
// the inputs can be re-rendered; payment fields are never stored.
type Wizard struct {
	Step   int    `json:"step"`
	Fields Form   `json:"fields"`
	Errors Errors `json:"errors"`
}

func NewWizard() Wizard {
	return Wizard{
		Step:   FirstStep,
		Fields: Form{},
		Errors: Errors{},
	}
}

// Next validates the current step against form. On success the wizard moves
// forward (never past the last step); on failure it stays put and Errors holds
// one message per failing field. Earlier messages are always replaced.
func (w *Wizard) Next(form Form, now time.Time) bool {
	w.normalize()
	w.remember(form)

	w.Errors = ValidateStep(w.Step, form, now)
	if !w.Errors.Valid() {
		return false
	}
	if w.Step < LastStep {
		w.Step++
	}
	return true
}

// Prev always succeeds and does not re-validate. Whatever was typed into the
// current step's non-payment inputs is kept so it reappears on return.
func (w *Wizard) Prev(form Form) {
	w.normalize()
	w.remember(form)
	if w.Step > FirstStep {
		w.Step--
	}
}

// Submit re-validates the final step. It reports whether the order may be
// confirmed; ErrNotAtFinalStep is returned when the wizard is elsewhere.
func (w *Wizard) Submit(form Form, now time.Time) (bool, error) {
	w.normalize()
	if w.Step != LastStep {
		return false, ErrNotAtFinalStep
	}

	w.Errors = ValidateStep(LastStep, form, now)
	return w.Errors.Valid(), nil
}

func (w *Wizard) Reset() {
	*w = NewWizard()
}

func (w *Wizard) remember(form Form) {
	for _, f := range stepFields[w.Step] {
		if IsPaymentField(f) {
			continue
		}
		if v, ok := form[f]; ok {
			w.Fields[f] = v
		}
	}
}

// normalize repairs a zero or out of range wizard, e.g. one decoded from an
// older snapshot.
func (w *Wizard) normalize() {
	if w.Step < FirstStep || w.Step > LastStep {
		w.Step = FirstStep
	}
	if w.Fields == nil {
		w.Fields = Form{}
	}
	if w.Errors == nil {
		w.Errors = Errors{}
	}
}

// StepView is what the page needs to draw one step and its progress marker.
type StepView struct {
	Number  int  `json:"number"`
	Visible bool `json:"visible"`
	Reached bool `json:"reached"`
}

// Steps reports the visibility of every step: exactly one visible, and all
// steps up to and including the current one reached.
func (w Wizard) Steps() []StepView {
	current := w.Step
	if current < FirstStep || current > LastStep {
		current = FirstStep
	}

	out := make([]StepView, 0, LastStep)
	for n := FirstStep; n <= LastStep; n++ {
		out = append(out, StepView{
			Number:  n,
			Visible: n == current,
			Reached: n <= current,
		})
	}
	return out
}
