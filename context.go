package morastr

import (
	"sync"

	"gopkg.in/yaml.v2"
)

// pairKey identifies a two-character hankaku rule. The spec's reference
// implementation packs both key spaces into one integer for a single flat
// hash table; a plain Go map keyed on a two-rune array is the idiomatic
// equivalent and keeps the single- and pair-char rules in separate, clearly
// typed maps instead of bit-packing.
type pairKey [2]rune

// Context holds the process-wide state S (§3 of the distilled spec): the
// hankaku pair map, the optional pre-converter, and the derived
// mapping_extra_len flag the normaliser uses to decide whether it needs to
// look two characters ahead. The classification table (C1) is not part of
// Context: it is static and built once at package init.
//
// Context is safe for concurrent reads once registration has settled, but
// Register and SetConverter are documented (per §5) as not safe to call
// concurrently with any search, normalise, or construction.
type Context struct {
	mu        sync.RWMutex
	single    map[rune]rune
	pair      map[pairKey]rune
	extraLen  int
	converter func(string) (string, error)
}

// NewContext returns a Context with empty registration state, equivalent to
// the state of S immediately after module load.
func NewContext() *Context {
	return &Context{
		single: make(map[rune]rune),
		pair:   make(map[pairKey]rune),
	}
}

var defaultContext = NewContext()

// DefaultContext returns the package-level Context used by the free
// functions (NewMoraStr, Register, SetConverter, ...).
func DefaultContext() *Context {
	return defaultContext
}

// Register installs mapping into the hankaku pair map, clearing whatever
// was registered before. Keys of length other than 1 or 2 runes are
// returned unchanged in the residue map for the caller to handle. Every key
// character must be neither full-width katakana nor hiragana; every value
// must be exactly one full-width katakana character.
func (ctx *Context) Register(mapping map[string]string) (map[string]string, error) {
	single := make(map[rune]rune)
	pair := make(map[pairKey]rune)
	residue := make(map[string]string)
	extraLen := 0

	for k, v := range mapping {
		vr := []rune(v)
		if len(vr) != 1 || !IsFullwidthKatakana(vr[0]) {
			return nil, newTypeMismatch("registration value must be exactly one full-width katakana character")
		}
		kr := []rune(k)
		switch len(kr) {
		case 1:
			if IsFullwidthKatakana(kr[0]) || isHiraganaConvertible(kr[0]) {
				return nil, newTypeMismatch("registration key must not be katakana or hiragana")
			}
			single[kr[0]] = vr[0]
		case 2:
			if IsFullwidthKatakana(kr[0]) || isHiraganaConvertible(kr[0]) ||
				IsFullwidthKatakana(kr[1]) || isHiraganaConvertible(kr[1]) {
				return nil, newTypeMismatch("registration key must not be katakana or hiragana")
			}
			pair[pairKey{kr[0], kr[1]}] = vr[0]
			extraLen = 1
		default:
			residue[k] = v
		}
	}

	ctx.mu.Lock()
	ctx.single = single
	ctx.pair = pair
	ctx.extraLen = extraLen
	ctx.mu.Unlock()

	logger.Info().Int("single_rules", len(single)).Int("pair_rules", len(pair)).Msg("hankaku map registered")
	return residue, nil
}

// RegisterFromYAML unmarshals a flat string-to-string mapping from YAML and
// installs it via Register. This is the only "configuration file" surface
// in scope: a hankaku map loaded from disk instead of written as a Go map
// literal.
func (ctx *Context) RegisterFromYAML(data []byte) (map[string]string, error) {
	var mapping map[string]string
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, newTypeMismatch("invalid YAML: " + err.Error())
	}
	return ctx.Register(mapping)
}

// SetConverter installs or clears (pass nil) the optional pre-processing
// callable consulted at the start of normalisation.
func (ctx *Context) SetConverter(f func(string) (string, error)) {
	ctx.mu.Lock()
	ctx.converter = f
	ctx.mu.Unlock()
	logger.Info().Bool("cleared", f == nil).Msg("converter changed")
}

func (ctx *Context) lookupSingle(c rune) (rune, bool) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	v, ok := ctx.single[c]
	return v, ok
}

func (ctx *Context) lookupPair(c1, c2 rune) (rune, bool) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	v, ok := ctx.pair[pairKey{c1, c2}]
	return v, ok
}

func (ctx *Context) extraLength() int {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.extraLen
}

func (ctx *Context) getConverter() func(string) (string, error) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.converter
}

// Register installs mapping into the default Context.
func Register(mapping map[string]string) (map[string]string, error) {
	return defaultContext.Register(mapping)
}

// RegisterFromYAML installs a YAML-sourced mapping into the default Context.
func RegisterFromYAML(data []byte) (map[string]string, error) {
	return defaultContext.RegisterFromYAML(data)
}

// SetConverter installs or clears the default Context's pre-converter.
func SetConverter(f func(string) (string, error)) {
	defaultContext.SetConverter(f)
}
