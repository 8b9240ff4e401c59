package domain

import "time"

// Defaults for FieldOptions.
const (
	DefaultSearchParam       = "search"
	DefaultSizeParam         = "size"
	DefaultPageSize          = 20
	DefaultMinQueryLength    = 2
	DefaultMinQueryLengthCJK = 1
	DefaultDebounceDelay     = 300 * time.Millisecond
	DefaultBlurDelay         = 150 * time.Millisecond
	DefaultCacheExpiration   = 300 * time.Second
	DefaultPlaceholder       = "请输入搜索内容..."
	DefaultNoResultsText     = "未找到匹配项"
	DefaultLoadingText       = "搜索中..."
)

// FieldOptions configures one search field.
// Start from DefaultFieldOptions; zero numeric values are replaced by defaults.
type FieldOptions struct {
	// APIURL is the remote search endpoint, absolute or relative to the API base.
	APIURL string

	// SearchParam and SizeParam name the query-string parameters.
	SearchParam string
	SizeParam   string

	// DefaultSize is the page-size hint sent with every search.
	DefaultSize int

	// MinQueryLength applies to latin text, MinQueryLengthCJK to text with CJK characters.
	MinQueryLength    int
	MinQueryLengthCJK int

	// DebounceDelay is how long input must be idle before searching.
	DebounceDelay time.Duration

	// BlurDelay is the grace period before closing the dropdown on blur.
	BlurDelay time.Duration

	// EnableCache turns the per-field result cache on.
	EnableCache bool

	// CacheExpiration is the cache entry TTL.
	CacheExpiration time.Duration

	Placeholder   string
	NoResultsText string
	LoadingText   string

	// FormatItem maps raw records to items. Defaults to DefaultFormatItem.
	FormatItem ItemFormatter

	// FormatDisplay renders the input text for a selection. Defaults to the item name.
	FormatDisplay DisplayFormatter

	// OnSelect runs when an item is committed.
	OnSelect func(item SearchItem)

	// OnChange runs when the text or selection changes. item is nil without a selection.
	OnChange func(text string, item *SearchItem)

	// OnSearch runs when a search is dispatched.
	OnSearch func(query string)

	// OnError runs when a search fails.
	OnError func(err error)

	Validation ValidationOptions

	// Disabled starts the field disabled.
	Disabled bool
}

// DefaultFieldOptions returns options with every default applied.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{
		SearchParam:       DefaultSearchParam,
		SizeParam:         DefaultSizeParam,
		DefaultSize:       DefaultPageSize,
		MinQueryLength:    DefaultMinQueryLength,
		MinQueryLengthCJK: DefaultMinQueryLengthCJK,
		DebounceDelay:     DefaultDebounceDelay,
		BlurDelay:         DefaultBlurDelay,
		EnableCache:       true,
		CacheExpiration:   DefaultCacheExpiration,
		Placeholder:       DefaultPlaceholder,
		NoResultsText:     DefaultNoResultsText,
		LoadingText:       DefaultLoadingText,
		FormatItem:        DefaultFormatItem,
		FormatDisplay:     DefaultFormatDisplay,
		Validation: ValidationOptions{
			ValidateOn: DefaultTriggers(),
			ShowErrors: true,
		},
	}
}

// WithDefaults returns a copy with zero values replaced by defaults.
// Boolean options are left as given.
func (o FieldOptions) WithDefaults() FieldOptions {
	if o.SearchParam == "" {
		o.SearchParam = DefaultSearchParam
	}
	if o.SizeParam == "" {
		o.SizeParam = DefaultSizeParam
	}
	if o.DefaultSize <= 0 {
		o.DefaultSize = DefaultPageSize
	}
	if o.MinQueryLength <= 0 {
		o.MinQueryLength = DefaultMinQueryLength
	}
	if o.MinQueryLengthCJK <= 0 {
		o.MinQueryLengthCJK = DefaultMinQueryLengthCJK
	}
	if o.DebounceDelay <= 0 {
		o.DebounceDelay = DefaultDebounceDelay
	}
	if o.BlurDelay <= 0 {
		o.BlurDelay = DefaultBlurDelay
	}
	if o.CacheExpiration <= 0 {
		o.CacheExpiration = DefaultCacheExpiration
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.NoResultsText == "" {
		o.NoResultsText = DefaultNoResultsText
	}
	if o.LoadingText == "" {
		o.LoadingText = DefaultLoadingText
	}
	if o.FormatItem == nil {
		o.FormatItem = DefaultFormatItem
	}
	if o.FormatDisplay == nil {
		o.FormatDisplay = DefaultFormatDisplay
	}
	if len(o.Validation.ValidateOn) == 0 {
		o.Validation.ValidateOn = DefaultTriggers()
	}
	return o
}

// MinLengthFor returns the effective minimum query length for text.
func (o FieldOptions) MinLengthFor(text string) int {
	return EffectiveMinLength(text, o.MinQueryLength, o.MinQueryLengthCJK)
}
