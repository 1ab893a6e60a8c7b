package intent

import "regexp"

// Responder produces the reply text for a matched rule. It is either Fixed or Templated.
type Responder interface {
	isResponder()
}

// Fixed is a responder that always returns the same text.
type Fixed string

// Templated builds the reply from the regular expression match.
type Templated func(m Match) string

func (Fixed) isResponder()     {}
func (Templated) isResponder() {}

// Match is the result of a successful pattern test: the full match at index 0
// followed by the captured groups.
type Match struct {
	Input  string
	Groups []string
}

// Group returns the i-th submatch, or "" if the group does not exist or did not participate.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Rule pairs a pattern with the responder used when the pattern matches.
type Rule struct {
	Name      string
	Pattern   *regexp.Regexp
	Responder Responder
}

// Pattern compiles expr as a case-insensitive expression. It panics on invalid input and
// is meant for rule tables built at start-up.
func Pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + expr)
}

func (r Rule) reply(m Match) string {
	switch resp := r.Responder.(type) {
	case Fixed:
		return string(resp)
	case Templated:
		if resp == nil {
			return ""
		}
		return resp(m)
	default:
		return ""
	}
}

func (r Rule) match(input string) (Match, bool) {
	if r.Pattern == nil {
		return Match{}, false
	}
	groups := r.Pattern.FindStringSubmatch(input)
	if groups == nil {
		return Match{}, false
	}
	return Match{Input: input, Groups: groups}, true
}
