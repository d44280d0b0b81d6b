package theme

import (
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Producer lazily builds the raw style of a source. It receives a Resolver
// for composing other sources and the modifiers of the current request.
// Returning a nil style is an InvalidStyleError.
type Producer func(r Resolver, mods Modifiers) (*Style, error)

// PostProcessor transforms every fully merged style. Its result replaces
// the input; returning a nil style is an InvalidStyleError.
type PostProcessor func(*Style) (*Style, error)

// Resolver is the view of the engine handed to producers.
type Resolver interface {
	// GetStyle resolves another source. Calls made from inside a producer
	// are checked for cycles against the producer's own resolution path.
	GetStyle(name string, mods Modifiers, extra *Style) (*Style, error)
	// Theme returns the engine doing the resolution.
	Theme() *Theme
}

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "stylo",
	Level:  log.WarnLevel,
})

// Theme owns named style sources and an optional post processor.
//
// A Theme is not safe for concurrent use; callers synchronize access.
// Use Clone to hand an independent copy to another owner.
type Theme struct {
	sources map[string]Producer
	post    PostProcessor
	logger  *log.Logger

	deprecation sync.Once
}

// New creates a Theme. A non-nil sources map is used directly, not copied.
func New(sources map[string]Producer) *Theme {
	if sources == nil {
		sources = make(map[string]Producer)
	}
	return &Theme{sources: sources, logger: defaultLogger}
}

// SetLogger replaces the logger used for warnings and debug output.
func (t *Theme) SetLogger(l *log.Logger) {
	t.logger = l
}

func (t *Theme) log() *log.Logger {
	if t.logger == nil {
		return defaultLogger
	}
	return t.logger
}

// SetSource installs producer under name, replacing any previous one.
func (t *Theme) SetSource(name string, producer Producer) {
	if t.sources == nil {
		t.sources = make(map[string]Producer)
	}
	t.sources[name] = producer
	t.log().Debug("source set", "name", name)
}

// ExtendSource layers extender over the producer registered under name.
// The extended producer shallow-merges the extender's raw style over the
// previous raw style, before any mixin or modifier resolution. If name has
// no producer yet, ExtendSource behaves like SetSource.
func (t *Theme) ExtendSource(name string, extender Producer) {
	base, ok := t.sources[name]
	if !ok || base == nil {
		t.SetSource(name, extender)
		return
	}
	t.sources[name] = func(r Resolver, mods Modifiers) (*Style, error) {
		style, err := base(r, mods)
		if err != nil {
			return nil, err
		}
		if style == nil {
			return nil, &InvalidStyleError{Name: name, Reason: "base producer returned nil"}
		}
		ext, err := extender(r, mods)
		if err != nil {
			return nil, err
		}
		if ext == nil {
			return nil, &InvalidStyleError{Name: name, Reason: "extender returned nil"}
		}
		return style.Clone().Merge(ext), nil
	}
	t.log().Debug("source extended", "name", name)
}

// Has reports whether name has a registered producer.
func (t *Theme) Has(name string) bool {
	_, ok := t.sources[name]
	return ok
}

// Names returns the registered source names, sorted.
func (t *Theme) Names() []string {
	return slices.Sorted(maps.Keys(t.sources))
}

// GetStyle resolves the source registered under name.
//
// Mixins are inlined first, then modifier groups selected by mods are
// merged, then extra is laid over the result, and finally the post
// processor runs. mods and extra may be nil.
func (t *Theme) GetStyle(name string, mods Modifiers, extra *Style) (*Style, error) {
	return t.getStyle(nil, name, mods, extra)
}

// Get is an alias of GetStyle.
//
// Deprecated: use GetStyle.
func (t *Theme) Get(name string, mods Modifiers, extra *Style) (*Style, error) {
	t.deprecation.Do(func() {
		t.log().Warn("Theme.Get is deprecated, use Theme.GetStyle", "source", name)
	})
	return t.GetStyle(name, mods, extra)
}

// Theme returns t, so a Theme can be used wherever a Resolver is expected.
func (t *Theme) Theme() *Theme { return t }

// SetPostProcessor replaces the post processor. nil removes it.
func (t *Theme) SetPostProcessor(fn PostProcessor) {
	t.post = fn
}

// PostProcessor returns the current post processor, or nil.
func (t *Theme) PostProcessor() PostProcessor {
	return t.post
}

// Clone returns an independent Theme sharing the same producers and post
// processor. Sources registered on the clone do not affect t.
func (t *Theme) Clone() *Theme {
	sources := maps.Clone(t.sources)
	if sources == nil {
		sources = make(map[string]Producer)
	}
	return &Theme{sources: sources, post: t.post, logger: t.logger}
}
