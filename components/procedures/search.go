package procedures

import (
	"sort"
	"strings"

	"github.com/goliatone/go-intake/pkg/catalog"
)

// Option is one selectable procedure code as the handler serves it.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Search filters the catalog by a case-insensitive substring match on code
// or label. Prefix matches on either rank ahead of the rest; ties order by
// label.
func Search(set catalog.Set, query string, limit int, opts Options) []Option {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	options := set.Options()

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchAll {
			if len(options) > limit {
				options = options[:limit]
			}
			out := make([]Option, 0, len(options))
			for _, opt := range options {
				out = append(out, Option{Value: opt.Value, Label: opt.Label})
			}
			return out
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedOption, 0, len(options))
	for _, opt := range options {
		value := strings.ToLower(opt.Value)
		label := strings.ToLower(opt.Label)
		if !strings.Contains(value, q) && !strings.Contains(label, q) {
			continue
		}
		matches = append(matches, matchedOption{
			option:   Option{Value: opt.Value, Label: opt.Label},
			isPrefix: strings.HasPrefix(value, q) || strings.HasPrefix(label, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].option.Label < matches[j].option.Label
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.option)
	}
	return out
}

type matchedOption struct {
	option   Option
	isPrefix bool
}
