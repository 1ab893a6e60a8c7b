package intent

// FallbackIntent names the reply given when neither a rule nor a secondary fallback matched.
const FallbackIntent = "fallback"

// DefaultFallback is used when a table is built without a generic fallback.
const DefaultFallback = "I'm here to help with any funeral service questions. You can ask me about packages, pricing, services, arrangements, documentation, or anything else related to funeral planning. What would you like to know?"

// Table is an ordered, immutable set of rules. Position in the table is the only
// priority: the first matching rule wins.
type Table struct {
	rules     []Rule
	fallbacks []Rule
	generic   string
}

// NewTable copies rules and fallbacks so later changes to the caller's slices do not
// affect matching. An empty generic fallback is replaced with DefaultFallback.
func NewTable(rules, fallbacks []Rule, generic string) *Table {
	if generic == "" {
		generic = DefaultFallback
	}
	return &Table{
		rules:     append([]Rule(nil), rules...),
		fallbacks: append([]Rule(nil), fallbacks...),
		generic:   generic,
	}
}

func (t *Table) Rules() []Rule     { return append([]Rule(nil), t.rules...) }
func (t *Table) Fallbacks() []Rule { return append([]Rule(nil), t.fallbacks...) }
func (t *Table) Generic() string   { return t.generic }

// Reply is the outcome of resolving one utterance.
type Reply struct {
	Text    string
	Intent  string
	Matched bool
}

// Matcher maps a free-text utterance to a reply using a fixed Table.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	table *Table
}

func NewMatcher(t *Table) *Matcher {
	if t == nil {
		t = NewTable(nil, nil, "")
	}
	return &Matcher{table: t}
}

// Match returns the reply text for input. It never returns an empty string.
func (m *Matcher) Match(input string) string {
	return m.Resolve(input).Text
}

// Resolve scans the primary rules, then the secondary fallbacks, then falls back to
// the generic text. Matched is true only when a primary rule fired.
func (m *Matcher) Resolve(input string) Reply {
	for _, r := range m.table.rules {
		if mt, ok := r.match(input); ok {
			if text := r.reply(mt); text != "" {
				return Reply{Text: text, Intent: r.Name, Matched: true}
			}
			// A responder that produced nothing still owns the input.
			return m.generic()
		}
	}
	for _, r := range m.table.fallbacks {
		if mt, ok := r.match(input); ok {
			if text := r.reply(mt); text != "" {
				return Reply{Text: text, Intent: r.Name}
			}
		}
	}
	return m.generic()
}

func (m *Matcher) generic() Reply {
	return Reply{Text: m.table.generic, Intent: FallbackIntent}
}
