package cmd

// Options holds the shared command-line options for the stalesweep CLI.
type Options struct {
	Repo        string   // owner/name, overrides config and GITHUB_REPOSITORY
	InactiveFor string   // inactivity threshold, e.g. "45m", "30d"
	Format      string   // text, table, markdown, json
	WebhookURL  string   // chat webhook for the run summary
	ExemptUsers []string // users never unassigned
	DryRun      bool
	Timeout     int // per-call deadline in seconds
	Verbosity   int
	NoColor     bool
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithRepo sets the target repository (owner/name).
func WithRepo(repo string) Option {
	return func(o *Options) {
		o.Repo = repo
	}
}

// WithInactiveFor sets the inactivity threshold (e.g., "45m", "30d").
func WithInactiveFor(d string) Option {
	return func(o *Options) {
		o.InactiveFor = d
	}
}

// WithFormat sets the output format (text, table, markdown, json).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithWebhookURL sets the chat webhook URL for the run summary.
func WithWebhookURL(url string) Option {
	return func(o *Options) {
		o.WebhookURL = url
	}
}

// WithExemptUsers sets users that are never unassigned.
func WithExemptUsers(users []string) Option {
	return func(o *Options) {
		o.ExemptUsers = users
	}
}

// WithDryRun reports what would change without performing mutations.
func WithDryRun(dryRun bool) Option {
	return func(o *Options) {
		o.DryRun = dryRun
	}
}

// WithTimeout sets the per-call deadline in seconds.
func WithTimeout(seconds int) Option {
	return func(o *Options) {
		o.Timeout = seconds
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}
