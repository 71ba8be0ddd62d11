package search

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vivuhq/vivu/catalog"
	"github.com/vivuhq/vivu/logger"
	"github.com/vivuhq/vivu/metrics"
	"golang.org/x/text/language"
)

const (
	// Inputs shorter than this (after trimming) short-circuit Suggest
	// without touching the catalog.
	minSuggestionRunes = 2

	DefaultSuggestionLimit = 5
	DefaultPopularLimit    = 10
)

// Service is the federated search engine facade: it validates queries, runs
// the matcher over the merged catalog snapshot and produces sorted, paged
// responses. Safe for concurrent use.
type Service struct {
	logger logger.Logger
	loader *catalog.Loader
	cache  *ResultCache // nil disables caching
	locale language.Tag
}

func New(logger logger.Logger, loader *catalog.Loader, cache *ResultCache, locale string) *Service {
	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("unknown locale, falling back to Vietnamese collation", "locale", locale)
		tag = language.Vietnamese
	}

	return &Service{
		logger: logger,
		loader: loader,
		cache:  cache,
		locale: tag,
	}
}

// Search runs the full pipeline: validate, cache lookup, filter and score,
// sort, paginate, cache store.
func (s *Service) Search(ctx context.Context, query Query) (*Response, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	signature := query.Signature()
	if s.cache != nil {
		if response := s.cache.Get(signature); response != nil {
			metrics.ResultCacheTotal.WithLabelValues("hit").Inc()
			return response, nil
		}
		metrics.ResultCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()

	items, err := s.loader.Items(ctx)
	if err != nil {
		return nil, err
	}

	terms := queryTerms(query.Text)
	matched := s.matchAndScore(items, &query, terms)

	sortItems(matched, query.SortBy, query.SortOrder, s.locale)

	results, pagination, err := paginate(matched, query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Results:     results,
		PageDetails: pagination,
		Filters: Filters{
			Text:      strings.TrimSpace(query.Text),
			Type:      query.Type,
			MinPrice:  query.MinPrice,
			MaxPrice:  query.MaxPrice,
			MinRating: query.MinRating,
			Tags:      query.Tags,
		},
		SearchTime: time.Since(start).String(),
	}

	if s.cache != nil {
		s.cache.Put(signature, response)
	}

	metrics.SearchesTotal.Inc()
	return response, nil
}

// matchAndScore returns the items passing both the structured filters and
// the text stage, each carrying its resolved relevance score. Items are
// copied out of the shared snapshot: the snapshot itself is never mutated.
func (s *Service) matchAndScore(items []catalog.SearchableItem, query *Query, terms []string) []catalog.SearchableItem {
	matched := make([]catalog.SearchableItem, 0, len(items))
	for i := range items {
		if !matchesFilters(&items[i], query) {
			continue
		}

		fields := newMatchFields(items[i].Name, items[i].Description, items[i].Location, items[i].Features, items[i].Amenities)
		relevance := score(fields, terms)
		if len(terms) > 0 && relevance == 0 {
			continue
		}

		item := items[i]
		item.RelevanceScore = relevance
		matched = append(matched, item)
	}
	return matched
}

// Suggest returns up to limit lightweight suggestions for a partial query.
// Suggestions reuse the text-matching stage only (no structured filters)
// and rank by rating, which is more useful than text relevance for short
// prefixes. Results are not cached.
func (s *Service) Suggest(ctx context.Context, text string, limit int) ([]Suggestion, error) {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minSuggestionRunes {
		return []Suggestion{}, nil
	}

	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	items, err := s.loader.Items(ctx)
	if err != nil {
		return nil, err
	}

	terms := queryTerms(trimmed)
	matched := make([]catalog.SearchableItem, 0, limit)
	for i := range items {
		fields := newMatchFields(items[i].Name, items[i].Description, items[i].Location, items[i].Features, items[i].Amenities)
		if len(terms) > 0 && score(fields, terms) == 0 {
			continue
		}
		matched = append(matched, items[i])
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}

	suggestions := make([]Suggestion, 0, len(matched))
	for _, item := range matched {
		suggestions = append(suggestions, Suggestion{
			ID:       item.ID,
			Name:     item.Name,
			Type:     item.Type,
			Location: item.Location,
		})
	}

	metrics.SuggestionsTotal.Inc()
	return suggestions, nil
}

// Popular returns the top-rated items across every catalog, unfiltered.
func (s *Service) Popular(ctx context.Context, limit int) ([]catalog.SearchableItem, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	items, err := s.loader.Items(ctx)
	if err != nil {
		return nil, err
	}

	popular := make([]catalog.SearchableItem, len(items))
	copy(popular, items)
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Rating > popular[j].Rating
	})
	if len(popular) > limit {
		popular = popular[:limit]
	}

	return popular, nil
}

// Reload forces a full catalog reload, the recovery path after a failed
// load. Cached responses are dropped since they may reflect the old catalog.
func (s *Service) Reload(ctx context.Context) error {
	if err := s.loader.Reload(ctx); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Clear()
	}
	s.logger.Info("catalog reloaded")
	return nil
}
