package boxedit

// Option configures a Widget at construction.
type Option func(*options)

type options struct {
	attrs   *Attributes
	resolve DrawableResolver
	prefs   *Preferences
}

// WithAttributes sets the style attributes the preferences are resolved
// from.
func WithAttributes(a *Attributes) Option {
	return func(o *options) {
		o.attrs = a
	}
}

// WithDrawableResolver sets how box_background references are resolved.
func WithDrawableResolver(r DrawableResolver) Option {
	return func(o *options) {
		o.resolve = r
	}
}

// WithPreferences bypasses attribute resolution. Values are used as
// given except that a Length below 1 becomes DefaultLength and
// negative sizes become 0.
func WithPreferences(p Preferences) Option {
	return func(o *options) {
		o.prefs = &p
	}
}
