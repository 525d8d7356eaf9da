package mdtidy

// DefaultWidth is the maximum line width used when none is configured.
const DefaultWidth = 80

// ReflowOption configures Reflow.
type ReflowOption func(*reflowConfig)

type reflowConfig struct {
	width        int
	frontMatter  bool
	taskCheckbox bool
}

func newReflowConfig(opts []ReflowOption) reflowConfig {
	cfg := reflowConfig{width: DefaultWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithWidth sets the maximum line width. Values below 1 keep DefaultWidth.
func WithWidth(width int) ReflowOption {
	return func(cfg *reflowConfig) {
		if width > 0 {
			cfg.width = width
		}
	}
}

// WithFrontMatter copies a leading front matter block through unchanged.
func WithFrontMatter(enabled bool) ReflowOption {
	return func(cfg *reflowConfig) {
		cfg.frontMatter = enabled
	}
}

// WithTaskCheckbox keeps a task list checkbox ("[ ]", "[x]") with its list
// marker so continuation lines hang under the task text.
func WithTaskCheckbox(enabled bool) ReflowOption {
	return func(cfg *reflowConfig) {
		cfg.taskCheckbox = enabled
	}
}
