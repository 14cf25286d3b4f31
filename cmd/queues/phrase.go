package queues

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/woojoong88/atomix/pkg/client"
)

var (
	ErrMalformedPattern = errors.New("malformed pattern")
	ErrMissingAction    = errors.New("must specify a queue and an action")
)

type slot int

const (
	literal slot = iota
	required
	optional
)

type token struct {
	kind slot
	name string
}

type handler func(cmd *cobra.Command, c client.Client, args map[string]string) error

// A phrase binds a command template such as "queue {queue} take [count]" to
// a handler. Bare words are literals, {x} is a required argument and [x] an
// optional one. Optional arguments may only trail the template.
type phrase struct {
	pattern string
	tokens  []token
	run     handler
}

func parsePattern(pattern string) ([]token, error) {
	words := strings.Fields(pattern)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrMalformedPattern)
	}

	tokens := make([]token, len(words))
	trailing := false

	for i, w := range words {
		var t token
		switch {
		case strings.HasPrefix(w, "{") && strings.HasSuffix(w, "}"):
			t = token{kind: required, name: w[1 : len(w)-1]}
		case strings.HasPrefix(w, "[") && strings.HasSuffix(w, "]"):
			t = token{kind: optional, name: w[1 : len(w)-1]}
		case strings.ContainsAny(w, "{}[]"):
			return nil, fmt.Errorf("%w: bad word %q in %q", ErrMalformedPattern, w, pattern)
		default:
			t = token{kind: literal, name: w}
		}

		if t.kind != literal && t.name == "" {
			return nil, fmt.Errorf("%w: unnamed argument in %q", ErrMalformedPattern, pattern)
		}
		if trailing && t.kind != optional {
			return nil, fmt.Errorf("%w: %q follows an optional argument in %q", ErrMalformedPattern, w, pattern)
		}

		trailing = t.kind == optional
		tokens[i] = t
	}

	return tokens, nil
}

func newPhrase(pattern string, run handler) *phrase {
	tokens, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}

	return &phrase{pattern: pattern, tokens: tokens, run: run}
}

// match binds words to the phrase arguments, words must be consumed exactly.
func (p *phrase) match(words []string) (map[string]string, bool) {
	args := map[string]string{}
	i := 0

	for _, t := range p.tokens {
		switch t.kind {
		case literal:
			if i >= len(words) || words[i] != t.name {
				return nil, false
			}
			i++
		case required:
			if i >= len(words) {
				return nil, false
			}
			args[t.name] = words[i]
			i++
		case optional:
			if i < len(words) {
				args[t.name] = words[i]
				i++
			}
		}
	}

	if i != len(words) {
		return nil, false
	}

	return args, true
}

// action returns the literal that selects the phrase, the first literal
// after the command name.
func (p *phrase) action() string {
	for _, t := range p.tokens[1:] {
		if t.kind == literal {
			return t.name
		}
	}
	return ""
}

type dispatcher struct {
	phrases []*phrase
}

func newDispatcher(phrases ...*phrase) *dispatcher {
	return &dispatcher{phrases: phrases}
}

func (d *dispatcher) actions() []string {
	actions := make([]string, len(d.phrases))
	for i, p := range d.phrases {
		actions[i] = p.action()
	}
	return actions
}

func (d *dispatcher) dispatch(cmd *cobra.Command, c client.Client, words []string) error {
	for _, p := range d.phrases {
		if args, ok := p.match(words); ok {
			return p.run(cmd, c, args)
		}
	}

	if len(words) < 3 {
		return ErrMissingAction
	}

	for _, p := range d.phrases {
		if p.action() == words[2] {
			return fmt.Errorf("usage: %s", p.pattern)
		}
	}

	return fmt.Errorf("unknown action %q, must be one of: %s", words[2], strings.Join(d.actions(), ", "))
}
