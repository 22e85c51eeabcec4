package input

// StyleToken names a style group. The same identifiers double as go-theme
// token keys.
type StyleToken string

const (
	TokenContainer   StyleToken = "forminput.container"
	TokenLabel       StyleToken = "forminput.label"
	TokenBase        StyleToken = "forminput.base"
	TokenFocus       StyleToken = "forminput.focus"
	TokenBackground  StyleToken = "forminput.background"
	TokenText        StyleToken = "forminput.text"
	TokenPlaceholder StyleToken = "forminput.placeholder"
	TokenBorder      StyleToken = "forminput.border"
	TokenBorderError StyleToken = "forminput.border-error"
	TokenErrorText   StyleToken = "forminput.error"
)

// Default*Class values are the light/dark Tailwind classes applied when no
// override is configured.
const (
	DefaultContainerClass   = "w-full"
	DefaultLabelClass       = "block text-sm font-medium text-gray-700 dark:text-gray-300 mb-1"
	DefaultBaseClass        = "w-full px-3 py-2 border rounded-lg transition-colors"
	DefaultFocusClass       = "focus:outline-none focus:ring-2 focus:ring-blue-500"
	DefaultBackgroundClass  = "bg-white dark:bg-gray-800"
	DefaultTextClass        = "text-gray-900 dark:text-white"
	DefaultPlaceholderClass = "placeholder-gray-400 dark:placeholder-gray-500"
	DefaultBorderClass      = "border-gray-300 dark:border-gray-600"
	DefaultBorderErrorClass = "border-red-500 dark:border-red-400"
	DefaultErrorTextClass   = "mt-1 text-sm text-red-600 dark:text-red-400"
)

// Styles holds the class groups composed into the rendered markup.
type Styles struct {
	Container   string
	Label       string
	Base        string
	Focus       string
	Background  string
	Text        string
	Placeholder string
	Border      string
	BorderError string
	ErrorText   string
}

// DefaultStyles returns the built-in class groups.
func DefaultStyles() Styles {
	return Styles{
		Container:   DefaultContainerClass,
		Label:       DefaultLabelClass,
		Base:        DefaultBaseClass,
		Focus:       DefaultFocusClass,
		Background:  DefaultBackgroundClass,
		Text:        DefaultTextClass,
		Placeholder: DefaultPlaceholderClass,
		Border:      DefaultBorderClass,
		BorderError: DefaultBorderErrorClass,
		ErrorText:   DefaultErrorTextClass,
	}
}

// Get returns the class group registered under token.
func (s Styles) Get(token StyleToken) (string, bool) {
	field := s.field(token)
	if field == nil {
		return "", false
	}
	return *field, true
}

// With returns a copy of s with the group for token replaced. Unknown tokens
// leave s unchanged.
func (s Styles) With(token StyleToken, value string) Styles {
	if field := s.field(token); field != nil {
		*field = value
	}
	return s
}

// Merge overlays the non-empty groups of override onto s.
func (s Styles) Merge(override Styles) Styles {
	for _, token := range styleTokens {
		if value, _ := override.Get(token); value != "" {
			s = s.With(token, value)
		}
	}
	return s
}

var styleTokens = []StyleToken{
	TokenContainer,
	TokenLabel,
	TokenBase,
	TokenFocus,
	TokenBackground,
	TokenText,
	TokenPlaceholder,
	TokenBorder,
	TokenBorderError,
	TokenErrorText,
}

func (s *Styles) field(token StyleToken) *string {
	switch token {
	case TokenContainer:
		return &s.Container
	case TokenLabel:
		return &s.Label
	case TokenBase:
		return &s.Base
	case TokenFocus:
		return &s.Focus
	case TokenBackground:
		return &s.Background
	case TokenText:
		return &s.Text
	case TokenPlaceholder:
		return &s.Placeholder
	case TokenBorder:
		return &s.Border
	case TokenBorderError:
		return &s.BorderError
	case TokenErrorText:
		return &s.ErrorText
	default:
		return nil
	}
}
