package queues

import (
	"context"
	"encoding/json"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/woojoong88/atomix/pkg/client"
)

// Resource provides the queue names known to the server. Any failure to
// fetch the names yields an empty list.
type Resource struct {
	c client.Client
}

func NewResource(c client.Client) *Resource {
	return &Resource{c: c}
}

func (r *Resource) Names(ctx context.Context) []string {
	res, err := r.c.V1().ListQueuesWithResponse(client.WithoutLogging(ctx))
	if err != nil || res.StatusCode() != 200 {
		return []string{}
	}

	if res.JSON200 != nil {
		return *res.JSON200
	}

	var names []string
	if err := json.Unmarshal(res.Body, &names); err != nil || names == nil {
		return []string{}
	}

	return names
}

// Suggest returns the rest of the first queue name that starts with prefix,
// ignoring case. The rest is cut by characters, lowercasing may change the
// byte length of a letter.
func (r *Resource) Suggest(ctx context.Context, prefix string) (string, bool) {
	n := utf8.RuneCountInString(prefix)

	for _, name := range r.Names(ctx) {
		if hasPrefixFold(name, prefix) {
			runes := []rune(name)
			if n >= len(runes) {
				return "", true
			}
			return string(runes[n:]), true
		}
	}

	return "", false
}

// Complete yields every queue name that starts with prefix, ignoring case,
// in server order. Names are fetched when the sequence is iterated.
func (r *Resource) Complete(ctx context.Context, prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.Names(ctx) {
			if hasPrefixFold(name, prefix) && !yield(name) {
				return
			}
		}
	}
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
