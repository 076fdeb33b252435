package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/scryfall/pkg/scryfall"
)

// endpoint describes one typed API call: verb, path template and whether
// the result may be cached. Path templates use %s for each segment; segments
// are validated and path-escaped before substitution.
type endpoint[T any] struct {
	method    string
	template  string
	cacheable bool
}

func get[T any](template string) endpoint[T] {
	return endpoint[T]{method: http.MethodGet, template: template, cacheable: true}
}

func getUncached[T any](template string) endpoint[T] {
	return endpoint[T]{method: http.MethodGet, template: template}
}

func post[T any](template string) endpoint[T] {
	return endpoint[T]{method: http.MethodPost, template: template}
}

// path renders the template with escaped segments and an optional raw query.
func (e endpoint[T]) path(rawQuery string, segments ...string) (string, error) {
	args := make([]interface{}, 0, len(segments))

	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return "", fmt.Errorf("%w: empty path segment for %s", scryfall.ErrInvalidArgument, e.template)
		}

		args = append(args, url.PathEscape(segment))
	}

	path := e.template
	if len(args) > 0 {
		path = fmt.Sprintf(e.template, args...)
	}

	if rawQuery != "" {
		path += "?" + rawQuery
	}

	return path, nil
}

// call resolves the path and delegates to the core.
func (e endpoint[T]) call(ctx context.Context, core *Core, rawQuery string, body interface{}, segments ...string) (*T, error) {
	path, err := e.path(rawQuery, segments...)
	if err != nil {
		return nil, err
	}

	if e.method == http.MethodPost {
		return FetchPost[T](ctx, core, path, body)
	}

	return FetchGet[T](ctx, core, path, e.cacheable)
}

// fetchNextPage follows a page's next_page link. The link is absolute and
// must live under the core's base URL so it resolves to the same cache key
// space as a directly built path.
func fetchNextPage[T any](ctx context.Context, core *Core, current *scryfall.ResultPage[T]) (*scryfall.ResultPage[T], error) {
	if current == nil || !current.HasMore || current.NextPage == "" {
		return nil, scryfall.ErrNoMorePages
	}

	path, found := strings.CutPrefix(current.NextPage, core.baseURL)
	if !found || (path != "" && !strings.HasPrefix(path, "/")) {
		return nil, fmt.Errorf("%w: %s", scryfall.ErrForeignNextPage, current.NextPage)
	}

	return FetchGet[scryfall.ResultPage[T]](ctx, core, path, true)
}
