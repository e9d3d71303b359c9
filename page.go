package musickit

import (
	"context"
	"iter"
	"net/url"
	"strconv"

	"musickit/resource"
)

// Stream iterates a collection endpoint using offset pagination, yielding
// resources until the API returns an empty page or yield reports false.
// Errors end the stream after being yielded once.
func Stream[T any](ctx context.Context, c *Client, path string, query url.Values, offset int) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		q := cloneValues(query)
		for {
			q.Set("offset", strconv.Itoa(offset))
			res, err := Get[resource.Response[T]](ctx, c, path, q)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if len(res.Data) == 0 {
				return
			}
			offset += len(res.Data)
			for _, item := range res.Data {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// NextPage fetches the next page of a relationship. It returns (nil, nil)
// when the relationship has no further pages.
func NextPage[T any](ctx context.Context, c *Client, rel *resource.Relationship[T]) (*resource.Relationship[T], error) {
	if rel == nil || rel.Next == "" {
		return nil, nil
	}
	return Get[resource.Relationship[T]](ctx, c, rel.Next, nil)
}

// NextView fetches the next page of a relationship view. It returns
// (nil, nil) when the view has no further pages.
func NextView[T any](ctx context.Context, c *Client, view *resource.View[T]) (*resource.View[T], error) {
	if view == nil || view.Next == "" {
		return nil, nil
	}
	return Get[resource.View[T]](ctx, c, view.Next, nil)
}

func cloneValues(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for key, values := range q {
		out[key] = append([]string(nil), values...)
	}
	return out
}
