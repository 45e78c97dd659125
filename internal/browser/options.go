package browser

// Options is the fixed set of presentation toggles recognized by the widget.
// Unknown toggles do not exist: hosts configure behavior only through these
// fields.
type Options struct {
	ShowHidden       bool
	FoldersFirst     bool
	ShowExtensions   bool
	ConfirmDeletions bool
	DisableSelection bool
}

// DefaultOptions returns the documented host-facing defaults. Selection is
// disabled by default; hosts opt in explicitly.
func DefaultOptions() Options {
	return Options{
		ShowHidden:       true,
		FoldersFirst:     true,
		ShowExtensions:   true,
		ConfirmDeletions: true,
		DisableSelection: true,
	}
}

// mergeOptions resolves the option bag for a prop update. A nil bag means
// the host wants the defaults.
func mergeOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	return *opts
}
