package driven

import "github.com/custodia-labs/searchfield/internal/core/domain"

// View is the rendering surface a search field drives.
//
// Methods are called with the field's lock held and must not call back
// into the field. Implementations that render asynchronously should only
// record state and schedule a redraw.
type View interface {
	// SetText replaces the input text.
	SetText(text string)

	// SetPlaceholder sets the hint shown while the input is empty.
	SetPlaceholder(text string)

	// SetOpen shows or hides the dropdown.
	SetOpen(open bool)

	// SetLoading shows or hides the loading indicator with text.
	SetLoading(loading bool, text string)

	// RenderResults replaces the list. highlighted is domain.NoHighlight or an index.
	RenderResults(items []domain.SearchItem, highlighted int)

	// ShowNoResults shows or hides the empty-result message.
	ShowNoResults(show bool, text string)

	// ShowMinLengthHint shows or hides the minimum length hint.
	ShowMinLengthHint(show bool, minLength int)

	// ShowError displays a validation message. An empty message hides it.
	ShowError(message string)

	// SetDisabled enables or disables the input.
	SetDisabled(disabled bool)
}
