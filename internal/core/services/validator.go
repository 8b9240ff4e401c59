package services

import (
	"github.com/custodia-labs/searchfield/internal/core/domain"
	"github.com/custodia-labs/searchfield/internal/core/ports/driven"
)

// Validator runs a field's rules and mirrors the outcome into an error sink.
//
// Every rule runs in order and every failure is kept, but only the first
// is surfaced. It is not safe for concurrent use; SearchField guards it.
type Validator struct {
	opts  domain.ValidationOptions
	sink  driven.ErrorSink
	state domain.ValidationState
}

// NewValidator creates a validator. sink may be nil.
func NewValidator(opts domain.ValidationOptions, sink driven.ErrorSink) *Validator {
	return &Validator{opts: opts, sink: sink, state: domain.NewValidationState()}
}

// Options returns the validation options.
func (v *Validator) Options() domain.ValidationOptions {
	return v.opts
}

// Run evaluates every rule and reports whether the value is valid.
// Without rules, or when disabled, it reports true and changes nothing.
func (v *Validator) Run(text string, selection *domain.SearchItem) bool {
	if !v.opts.Active() {
		return true
	}

	var errs []string
	for _, rule := range v.opts.Rules {
		if msg, ok := rule.Evaluate(text, selection); !ok {
			errs = append(errs, msg)
		}
	}
	v.state = domain.ValidationState{
		Errors:  errs,
		IsValid: len(errs) == 0,
		HasRun:  true,
	}
	v.mirror()
	return v.state.IsValid
}

// RunOn runs the rules if trigger is configured. ran is false otherwise.
func (v *Validator) RunOn(trigger domain.Trigger, text string, selection *domain.SearchItem) (valid, ran bool) {
	if !v.opts.Active() || !v.opts.RunsOn(trigger) {
		return true, false
	}
	return v.Run(text, selection), true
}

// Reset forgets the last outcome and clears the sink entry.
func (v *Validator) Reset() {
	v.state = domain.NewValidationState()
	v.mirror()
}

// State returns the last outcome.
func (v *Validator) State() domain.ValidationState {
	s := v.state
	s.Errors = append([]string(nil), s.Errors...)
	return s
}

// Displayed returns the message the view should show, or "".
func (v *Validator) Displayed() string {
	if !v.opts.ShowErrors {
		return ""
	}
	return v.state.ActiveError()
}

func (v *Validator) mirror() {
	if v.sink == nil || v.opts.FieldName == "" {
		return
	}
	if msg := v.state.ActiveError(); msg != "" {
		v.sink.Set(v.opts.FieldName, msg)
		return
	}
	v.sink.Clear(v.opts.FieldName)
}
