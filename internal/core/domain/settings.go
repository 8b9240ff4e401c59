package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// APISettings configures access to the admin API.
type APISettings struct {
	// BaseURL resolves relative field endpoints such as /api/admin/accounts.
	BaseURL string `toml:"base_url"`

	// Token is sent as a bearer token when set.
	Token string `toml:"token"`

	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond throttles outgoing searches. Zero disables throttling.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst is the throttle bucket size.
	Burst int `toml:"burst"`
}

// Timeout returns the request timeout.
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// SearchSettings holds defaults shared by every configured field.
type SearchSettings struct {
	DebounceMS        int  `toml:"debounce_ms"`
	BlurDelayMS       int  `toml:"blur_delay_ms"`
	MinQueryLength    int  `toml:"min_query_length"`
	MinQueryLengthCJK int  `toml:"min_query_length_cjk"`
	PageSize          int  `toml:"page_size"`
	CacheEnabled      bool `toml:"cache_enabled"`
	CacheTTLMS        int  `toml:"cache_ttl_ms"`
}

// RuleSettings is the file form of a validation rule.
type RuleSettings struct {
	Type    string `toml:"type"`
	Value   int    `toml:"value,omitempty"`
	Pattern string `toml:"pattern,omitempty"`
	Message string `toml:"message,omitempty"`
}

// ValidationSettings is the file form of ValidationOptions.
type ValidationSettings struct {
	Enabled    bool           `toml:"enabled"`
	ShowErrors *bool          `toml:"show_errors,omitempty"`
	ValidateOn []string       `toml:"validate_on,omitempty"`
	Rules      []RuleSettings `toml:"rules,omitempty"`
}

// FieldSettings describes one configured search field.
type FieldSettings struct {
	// Name is the field key, also used as the error sink key.
	Name string `toml:"name"`

	// Label is shown next to the input.
	Label string `toml:"label,omitempty"`

	// Preset selects an admin entity preset (account, domain, server, ...).
	Preset string `toml:"preset,omitempty"`

	// APIURL overrides the preset endpoint.
	APIURL string `toml:"api_url,omitempty"`

	Placeholder string             `toml:"placeholder,omitempty"`
	Disabled    bool               `toml:"disabled,omitempty"`
	Validation  ValidationSettings `toml:"validation,omitempty"`
}

// DisplayLabel returns Label, or Name when no label is set.
func (f FieldSettings) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Settings is the complete file configuration.
type Settings struct {
	Verbose bool            `toml:"verbose"`
	API     APISettings     `toml:"api"`
	Search  SearchSettings  `toml:"search"`
	Fields  []FieldSettings `toml:"fields"`
}

// DefaultSettings returns settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		API: APISettings{
			BaseURL:           "http://localhost:8080",
			TimeoutSeconds:    10,
			RequestsPerSecond: 5,
			Burst:             2,
		},
		Search: SearchSettings{
			DebounceMS:        int(DefaultDebounceDelay / time.Millisecond),
			BlurDelayMS:       int(DefaultBlurDelay / time.Millisecond),
			MinQueryLength:    DefaultMinQueryLength,
			MinQueryLengthCJK: DefaultMinQueryLengthCJK,
			PageSize:          DefaultPageSize,
			CacheEnabled:      true,
			CacheTTLMS:        int(DefaultCacheExpiration / time.Millisecond),
		},
	}
}

// Field returns the configured field with the given name.
func (s Settings) Field(name string) (FieldSettings, error) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return FieldSettings{}, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// FieldOptions builds options for a configured field, applying search defaults.
func (s Settings) FieldOptions(f FieldSettings) (FieldOptions, error) {
	opts := DefaultFieldOptions()
	if f.Preset != "" {
		p, err := Preset(f.Preset, "")
		if err != nil {
			return FieldOptions{}, err
		}
		opts = p
	}
	if f.APIURL != "" {
		opts.APIURL = f.APIURL
	}
	if f.Placeholder != "" {
		opts.Placeholder = f.Placeholder
	}
	opts.Disabled = f.Disabled

	search := s.Search
	opts.DebounceDelay = time.Duration(search.DebounceMS) * time.Millisecond
	opts.BlurDelay = time.Duration(search.BlurDelayMS) * time.Millisecond
	opts.MinQueryLength = search.MinQueryLength
	opts.MinQueryLengthCJK = search.MinQueryLengthCJK
	opts.DefaultSize = search.PageSize
	opts.EnableCache = search.CacheEnabled
	opts.CacheExpiration = time.Duration(search.CacheTTLMS) * time.Millisecond

	validation, err := f.Validation.options(f.Name)
	if err != nil {
		return FieldOptions{}, fmt.Errorf("field %s: %w", f.Name, err)
	}
	opts.Validation = validation

	return opts.WithDefaults(), nil
}

func (v ValidationSettings) options(fieldName string) (ValidationOptions, error) {
	opts := ValidationOptions{
		Enabled:    v.Enabled,
		ShowErrors: true,
		FieldName:  fieldName,
	}
	if v.ShowErrors != nil {
		opts.ShowErrors = *v.ShowErrors
	}

	for _, t := range v.ValidateOn {
		trigger := Trigger(strings.ToLower(t))
		switch trigger {
		case TriggerInput, TriggerBlur, TriggerChange:
			opts.ValidateOn = append(opts.ValidateOn, trigger)
		default:
			return ValidationOptions{}, fmt.Errorf("%w: unknown trigger %q", ErrInvalidRule, t)
		}
	}

	for _, rs := range v.Rules {
		rule, err := rs.Rule()
		if err != nil {
			return ValidationOptions{}, err
		}
		opts.Rules = append(opts.Rules, rule)
	}
	return opts, nil
}

// Rule builds the validation rule. Custom rules cannot come from a file.
func (r RuleSettings) Rule() (Rule, error) {
	kind := RuleKind(strings.ToLower(r.Type))
	switch kind {
	case RuleRequired:
		return Required(r.Message), nil
	case RuleRequiredSelection:
		return RequiredSelection(r.Message), nil
	case RuleMinLength:
		if r.Value <= 0 {
			return Rule{}, fmt.Errorf("%w: min_length needs a positive value", ErrInvalidRule)
		}
		return MinLength(r.Value, r.Message), nil
	case RuleMaxLength:
		if r.Value <= 0 {
			return Rule{}, fmt.Errorf("%w: max_length needs a positive value", ErrInvalidRule)
		}
		return MaxLength(r.Value, r.Message), nil
	case RulePattern:
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("%w: pattern %q: %v", ErrInvalidRule, r.Pattern, err)
		}
		return Pattern(re, r.Message), nil
	case RuleCustom:
		return Rule{}, fmt.Errorf("%w: custom rules must be registered in code", ErrInvalidRule)
	default:
		return Rule{}, fmt.Errorf("%w: unknown type %q", ErrInvalidRule, r.Type)
	}
}
