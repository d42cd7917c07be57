// Package yojana resolves welfare-scheme queries.
//
// With an empty query it lists the distinct scheme categories; with a
// keyword query it returns every scheme whose category, name, or
// description contains all of the query's tokens. Matching is an AND of
// case-insensitive substring tests, so "pension" finds "Pensioner" and
// results keep their source-file order.
package yojana

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/nagrikmitra/mitra/refdata"
)

// NoDataMessage is returned when the scheme table is missing or empty.
// It is distinct from the no-match message so callers can tell a data
// outage from a genuinely empty result.
const NoDataMessage = "❌ No schemes available at the moment. Please check back later."

// uncategorized stands in for records with an empty category so they
// still appear in the category listing.
const uncategorized = "Uncategorized"

const recordSeparator = "\n------------------------------\n\n"

// Source supplies the scheme table. *refdata.Store and *refdata.Loader
// both satisfy it.
type Source interface {
	Schemes() ([]refdata.SchemeRecord, error)
}

// Resolver answers scheme queries.
type Resolver struct {
	source Source
	logger *zap.Logger
}

// New creates a Resolver. A nil logger defaults to a no-op logger.
func New(source Source, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{source: source, logger: logger}
}

// Resolve answers the query. An empty or whitespace-only query lists all
// categories; anything else runs a keyword search. It never returns an
// error to the caller.
func (r *Resolver) Resolve(query string) string {
	schemes, err := r.source.Schemes()
	if err != nil {
		if !errors.Is(err, refdata.ErrUnavailable) {
			r.logger.Error("scheme table load failed", zap.Error(err))
		}
		return NoDataMessage
	}
	if len(schemes) == 0 {
		return NoDataMessage
	}

	if strings.TrimSpace(query) == "" {
		r.logger.Info("scheme categories listed", zap.Int("schemes", len(schemes)))
		return renderCategories(schemes)
	}

	matches := match(schemes, query)
	if len(matches) == 0 {
		r.logger.Warn("no schemes matched", zap.String("query", query))
		return renderNoMatch(schemes, query)
	}

	r.logger.Info("schemes matched",
		zap.String("query", query), zap.Int("matches", len(matches)))
	return renderMatches(matches, query)
}

// match returns every scheme containing all lowercase whitespace tokens
// of the query as substrings of its search text, in table order.
func match(schemes []refdata.SchemeRecord, query string) []refdata.SchemeRecord {
	tokens := strings.Fields(strings.ToLower(query))

	var matches []refdata.SchemeRecord
	for _, scheme := range schemes {
		text := scheme.SearchText()
		all := true
		for _, token := range tokens {
			if !strings.Contains(text, token) {
				all = false
				break
			}
		}
		if all {
			matches = append(matches, scheme)
		}
	}
	return matches
}

// categories returns the sorted, deduplicated category values.
// Sorting is lexicographic on the raw string, case-sensitive.
func categories(schemes []refdata.SchemeRecord) []string {
	seen := make(map[string]struct{}, len(schemes))
	var out []string
	for _, scheme := range schemes {
		category := scheme.Category
		if category == "" {
			category = uncategorized
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

func renderCategories(schemes []refdata.SchemeRecord) string {
	var b strings.Builder
	b.WriteString("🌟 *Available Scheme Categories:*\n")
	for _, category := range categories(schemes) {
		fmt.Fprintf(&b, "- %s\n", category)
	}
	b.WriteString("\nTo see schemes in a category, use `/yojana [category_name]`.")
	return b.String()
}

func renderNoMatch(schemes []refdata.SchemeRecord, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ No schemes matched '%s'.\n\nAvailable categories are:\n", query)
	for _, category := range categories(schemes) {
		fmt.Fprintf(&b, "- %s\n", category)
	}
	return b.String()
}

func renderMatches(matches []refdata.SchemeRecord, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📚 *Schemes matching '%s':*\n\n", query)

	for i, scheme := range matches {
		if i > 0 {
			b.WriteString(recordSeparator)
		}
		renderScheme(&b, scheme)
	}

	b.WriteString("\n*Need more details?* Ask me about any scheme!")
	return b.String()
}

func renderScheme(b *strings.Builder, scheme refdata.SchemeRecord) {
	fmt.Fprintf(b, "🔹 *%s*\n\n", scheme.Name)

	if scheme.Description != "" {
		fmt.Fprintf(b, "📝 *Description:* %s\n\n", scheme.Description)
	}
	if scheme.EligibilityCriteria != "" {
		fmt.Fprintf(b, "✅ *Eligibility Criteria:* %s\n\n", scheme.EligibilityCriteria)
	}
	if len(scheme.Benefits) > 0 {
		b.WriteString("💡 *Key Benefits:*\n")
		for _, benefit := range scheme.Benefits {
			fmt.Fprintf(b, "  • %s\n", benefit)
		}
		b.WriteString("\n")
	}

	category := scheme.Category
	if category == "" {
		category = uncategorized
	}
	fmt.Fprintf(b, "📂 *Category:* %s\n", category)

	if scheme.OfficialLink != "" {
		fmt.Fprintf(b, "🔗 *Official Link:* %s\n", scheme.OfficialLink)
	}
}
