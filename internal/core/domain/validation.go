package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleKind identifies a validation rule variant.
type RuleKind string

// Rule kinds.
const (
	RuleRequired          RuleKind = "required"
	RuleRequiredSelection RuleKind = "required_selection"
	RuleMinLength         RuleKind = "min_length"
	RuleMaxLength         RuleKind = "max_length"
	RulePattern           RuleKind = "pattern"
	RuleCustom            RuleKind = "custom"
)

// IsValid returns true if the rule kind is recognised.
func (k RuleKind) IsValid() bool {
	switch k {
	case RuleRequired, RuleRequiredSelection, RuleMinLength, RuleMaxLength, RulePattern, RuleCustom:
		return true
	default:
		return false
	}
}

// CustomCheck inspects the field text and selection.
// It returns ok=false with an optional message when the value is invalid.
type CustomCheck func(text string, selection *SearchItem) (ok bool, message string)

// Rule is one validation rule. Build rules with the constructors below.
type Rule struct {
	Kind    RuleKind
	Length  int
	Pattern *regexp.Regexp
	Check   CustomCheck
	Message string
}

// Required fails when the trimmed text is empty.
func Required(message ...string) Rule {
	return Rule{Kind: RuleRequired, Message: firstMessage(message)}
}

// RequiredSelection fails when no item has been selected.
func RequiredSelection(message ...string) Rule {
	return Rule{Kind: RuleRequiredSelection, Message: firstMessage(message)}
}

// MinLength fails when non-empty text is shorter than n characters.
func MinLength(n int, message ...string) Rule {
	return Rule{Kind: RuleMinLength, Length: n, Message: firstMessage(message)}
}

// MaxLength fails when text is longer than n characters.
func MaxLength(n int, message ...string) Rule {
	return Rule{Kind: RuleMaxLength, Length: n, Message: firstMessage(message)}
}

// Pattern fails when non-empty text does not match re.
func Pattern(re *regexp.Regexp, message ...string) Rule {
	return Rule{Kind: RulePattern, Pattern: re, Message: firstMessage(message)}
}

// Custom fails when check returns false.
func Custom(check CustomCheck, message ...string) Rule {
	return Rule{Kind: RuleCustom, Check: check, Message: firstMessage(message)}
}

func firstMessage(message []string) string {
	if len(message) == 0 {
		return ""
	}
	return message[0]
}

// Evaluate applies the rule and returns the failure message, or ok=true.
func (r Rule) Evaluate(text string, selection *SearchItem) (message string, ok bool) {
	switch r.Kind {
	case RuleRequired:
		ok = strings.TrimSpace(text) != ""
	case RuleRequiredSelection:
		ok = selection != nil
	case RuleMinLength:
		ok = text == "" || TextLength(text) >= r.Length
	case RuleMaxLength:
		ok = TextLength(text) <= r.Length
	case RulePattern:
		ok = text == "" || r.Pattern == nil || r.Pattern.MatchString(text)
	case RuleCustom:
		if r.Check == nil {
			return "", true
		}
		var custom string
		ok, custom = r.Check(text, selection)
		if !ok && custom != "" {
			return custom, false
		}
	default:
		return "", true
	}

	if ok {
		return "", true
	}
	return r.message(), false
}

func (r Rule) message() string {
	if r.Message != "" {
		return r.Message
	}
	switch r.Kind {
	case RuleRequired:
		return "此字段为必填项"
	case RuleRequiredSelection:
		return "请从下拉列表中选择一项"
	case RuleMinLength:
		return fmt.Sprintf("至少需要输入 %d 个字符", r.Length)
	case RuleMaxLength:
		return fmt.Sprintf("最多只能输入 %d 个字符", r.Length)
	case RulePattern:
		return "格式不正确"
	default:
		return "输入无效"
	}
}

// Trigger is an event that runs validation automatically.
type Trigger string

// Validation triggers.
const (
	TriggerInput  Trigger = "input"
	TriggerBlur   Trigger = "blur"
	TriggerChange Trigger = "change"
)

// DefaultTriggers are used when ValidationOptions.ValidateOn is empty.
func DefaultTriggers() []Trigger {
	return []Trigger{TriggerBlur, TriggerChange}
}

// ValidationOptions configures a field's validation pipeline.
type ValidationOptions struct {
	// Enabled turns the pipeline on.
	Enabled bool

	// Rules run in order. Every rule runs; only the first failure is shown.
	Rules []Rule

	// ValidateOn lists the events that run validation automatically.
	ValidateOn []Trigger

	// ShowErrors displays the active error on the field's view.
	ShowErrors bool

	// FieldName is the key mirrored into the external error sink.
	FieldName string
}

// RunsOn reports whether trigger is configured.
func (o ValidationOptions) RunsOn(trigger Trigger) bool {
	triggers := o.ValidateOn
	if len(triggers) == 0 {
		triggers = DefaultTriggers()
	}
	for _, t := range triggers {
		if t == trigger {
			return true
		}
	}
	return false
}

// Active reports whether validation should run at all.
func (o ValidationOptions) Active() bool {
	return o.Enabled && len(o.Rules) > 0
}

// ValidationState is the outcome of the last validation run.
type ValidationState struct {
	// Errors holds every failing rule's message in rule order.
	Errors []string

	// IsValid is true when Errors is empty.
	IsValid bool

	// HasRun reports whether validation ran at least once.
	HasRun bool
}

// NewValidationState returns the state before any run.
func NewValidationState() ValidationState {
	return ValidationState{IsValid: true}
}

// ActiveError returns the message shown to the user, or "".
func (s ValidationState) ActiveError() string {
	if len(s.Errors) == 0 {
		return ""
	}
	return s.Errors[0]
}
