// Package interceptor redirects a page's primary action to a static
// "Under Maintenance" dialog instead of performing it.
package interceptor

import "go.uber.org/zap"

const (
	DefaultTitle   = "Under Maintenance"
	DefaultCompany = "UhuruChat Inc."
	DefaultFooter  = "We will update soon!"
	DefaultMessage = "We're currently working hard to bring you an amazing AI experience. " +
		"This feature is under active development and will be available soon."
)

// Dialog is the static content of the maintenance dialog.
type Dialog struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	Message string `json:"message"`
	Footer  string `json:"footer"`
}

func DefaultDialog() Dialog {
	return Dialog{
		Title:   DefaultTitle,
		Company: DefaultCompany,
		Message: DefaultMessage,
		Footer:  DefaultFooter,
	}
}

// Handler runs when an action is triggered. The default handler only opens
// the dialog; a real implementation can be swapped in with WithHandler.
type Handler func(i *Interceptor, action string)

// Maintenance is the default Handler.
func Maintenance(i *Interceptor, action string) {
	i.open = true
}

type Interceptor struct {
	dialog     Dialog
	open       bool
	lastAction string
	triggers   int
	handler    Handler
	logger     *zap.Logger
}

type Option func(*Interceptor)

func WithMessage(msg string) Option {
	return func(i *Interceptor) {
		if msg != "" {
			i.dialog.Message = msg
		}
	}
}

func WithHandler(h Handler) Option {
	return func(i *Interceptor) {
		if h != nil {
			i.handler = h
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(i *Interceptor) {
		if l != nil {
			i.logger = l
		}
	}
}

func New(opts ...Option) *Interceptor {
	i := &Interceptor{
		dialog:  DefaultDialog(),
		handler: Maintenance,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Trigger intercepts action. It never fails.
func (i *Interceptor) Trigger(action string) {
	i.lastAction = action
	i.triggers++
	i.logger.Info("action intercepted", zap.String("action", action), zap.Int("count", i.triggers))
	i.handler(i, action)
}

// Dismiss closes the dialog. Closing a closed dialog is a no-op.
func (i *Interceptor) Dismiss() {
	i.open = false
}

func (i *Interceptor) IsOpen() bool {
	return i.open
}

func (i *Interceptor) Dialog() Dialog {
	return i.dialog
}

func (i *Interceptor) LastAction() string {
	return i.lastAction
}

// Triggers counts how many actions were intercepted.
func (i *Interceptor) Triggers() int {
	return i.triggers
}
