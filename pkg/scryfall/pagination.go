package scryfall

import (
	"context"
	"fmt"
)

// PageFetcher returns the page following current.
type PageFetcher[T any] func(ctx context.Context, current *ResultPage[T]) (*ResultPage[T], error)

// CollectAll follows next_page links from first and returns every item. A
// maxPages of zero or less means no limit.
func CollectAll[T any](ctx context.Context, first *ResultPage[T], next PageFetcher[T], maxPages int) ([]T, error) {
	if first == nil {
		return nil, nil
	}

	items := append([]T(nil), first.Data...)
	page := first

	for fetched := 1; page.HasMore && (maxPages <= 0 || fetched < maxPages); fetched++ {
		nextPage, err := next(ctx, page)
		if err != nil {
			return items, fmt.Errorf("fetching page %d: %w", fetched+1, err)
		}

		items = append(items, nextPage.Data...)
		page = nextPage
	}

	return items, nil
}
