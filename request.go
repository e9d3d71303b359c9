package musickit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"musickit/resource"
)

// Endpoint describes an API resource: the object name used in query
// parameters (include[object], extend[object], ...) and the collection
// path. A "{storefront}" segment in the path is replaced with the
// effective storefront at request time.
type Endpoint struct {
	Object string
	Path   string
}

// Request is a fetch builder for one resource type. Builders are cheap,
// single-use values; One, Many, List and All consume them.
type Request[T any] struct {
	endpoint     Endpoint
	storefront   string
	localization string
	include      map[string][]string
	relate       map[string][]string
	extend       map[string][]string
	views        map[string][]string
	params       url.Values
	limit        int
	offset       int
}

// NewRequest creates a fetch builder for the given endpoint.
func NewRequest[T any](endpoint Endpoint) *Request[T] {
	return &Request[T]{
		endpoint: endpoint,
		params:   url.Values{},
	}
}

// Storefront overrides the client's storefront for this request.
func (r *Request[T]) Storefront(storefront string) *Request[T] {
	r.storefront = storefront
	return r
}

// Localization overrides the client's localization for this request.
func (r *Request[T]) Localization(localization string) *Request[T] {
	r.localization = localization
	return r
}

// Include requests full objects for the named relationships of this
// endpoint's object.
func (r *Request[T]) Include(relationships ...string) *Request[T] {
	r.include = appendNames(r.include, r.endpoint.Object, relationships)
	return r
}

// IncludeLazy requests identifiers only for the named relationships.
func (r *Request[T]) IncludeLazy(relationships ...string) *Request[T] {
	r.relate = appendNames(r.relate, r.endpoint.Object, relationships)
	return r
}

// Extend requests extended attributes for this endpoint's object.
func (r *Request[T]) Extend(attributes ...string) *Request[T] {
	r.extend = appendNames(r.extend, r.endpoint.Object, attributes)
	return r
}

// ExtendObject requests extended attributes on another object included in
// the response, e.g. extending artists while fetching albums.
func (r *Request[T]) ExtendObject(object string, attributes ...string) *Request[T] {
	r.extend = appendNames(r.extend, object, attributes)
	return r
}

// View requests the named relationship views.
func (r *Request[T]) View(views ...string) *Request[T] {
	r.views = appendNames(r.views, r.endpoint.Object, views)
	return r
}

// Filter adds a filter[name]=value query parameter.
func (r *Request[T]) Filter(name, value string) *Request[T] {
	r.params.Set("filter["+name+"]", value)
	return r
}

// Param adds an arbitrary query parameter.
func (r *Request[T]) Param(key, value string) *Request[T] {
	r.params.Set(key, value)
	return r
}

// Limit sets the page size for List and All.
func (r *Request[T]) Limit(n int) *Request[T] {
	r.limit = n
	return r
}

// Offset sets the starting offset for List and All.
func (r *Request[T]) Offset(n int) *Request[T] {
	r.offset = n
	return r
}

// One fetches a single resource by id. A 404 from the API is reported as
// (nil, nil) so callers can distinguish absence from failure.
func (r *Request[T]) One(ctx context.Context, c *Client, id string) (*T, error) {
	path := r.resolvePath(c) + "/" + url.PathEscape(id)
	res, err := Get[resource.Response[T]](ctx, c, path, r.query())
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(res.Data) == 0 {
		return nil, nil
	}
	return &res.Data[0], nil
}

// Many fetches multiple resources by id in one call. Like One, a 404
// from the API is reported as an empty result rather than an error.
func (r *Request[T]) Many(ctx context.Context, c *Client, ids []string) ([]T, error) {
	q := r.query()
	q.Set("ids", strings.Join(ids, ","))
	res, err := Get[resource.Response[T]](ctx, c, r.resolvePath(c), q)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return res.Data, nil
}

// List fetches the collection endpoint without ids, honoring any filters,
// limit and offset set on the builder.
func (r *Request[T]) List(ctx context.Context, c *Client) ([]T, error) {
	q := r.query()
	if r.limit > 0 {
		q.Set("limit", strconv.Itoa(r.limit))
	}
	if r.offset > 0 {
		q.Set("offset", strconv.Itoa(r.offset))
	}
	res, err := Get[resource.Response[T]](ctx, c, r.resolvePath(c), q)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return res.Data, nil
}

// All iterates the collection endpoint page by page, starting at the
// builder's offset, until the API returns an empty page.
func (r *Request[T]) All(ctx context.Context, c *Client) iter.Seq2[T, error] {
	limit := r.limit
	if limit <= 0 {
		limit = DefaultFetchLimit
	}
	q := r.query()
	q.Set("limit", strconv.Itoa(limit))
	return Stream[T](ctx, c, r.resolvePath(c), q, r.offset)
}

func (r *Request[T]) resolvePath(c *Client) string {
	storefront := r.storefront
	if storefront == "" {
		storefront = c.storefront
	}
	return strings.ReplaceAll(r.endpoint.Path, "{storefront}", storefront)
}

func (r *Request[T]) query() url.Values {
	q := url.Values{}
	for key, values := range r.params {
		q[key] = values
	}
	if r.localization != "" {
		q.Set("l", r.localization)
	}
	setGrouped(q, "include", r.include)
	setGrouped(q, "relate", r.relate)
	setGrouped(q, "extend", r.extend)
	setGrouped(q, "views", r.views)
	return q
}

func appendNames(storage map[string][]string, object string, names []string) map[string][]string {
	if storage == nil {
		storage = make(map[string][]string)
	}
	storage[object] = append(storage[object], names...)
	return storage
}

func setGrouped(q url.Values, param string, storage map[string][]string) {
	for object, names := range storage {
		q.Set(param+"["+object+"]", strings.Join(names, ","))
	}
}

// Get performs a GET against path and decodes the response body into E.
// Subpackages use it for endpoints with non-standard envelopes, e.g.
// search results.
func Get[E any](ctx context.Context, c *Client, path string, query url.Values) (*E, error) {
	return do[E](ctx, c, http.MethodGet, path, query, nil)
}

// Put performs a bodyless PUT against path, decoding the response into E.
func Put[E any](ctx context.Context, c *Client, path string, query url.Values) (*E, error) {
	return do[E](ctx, c, http.MethodPut, path, query, nil)
}

// Post performs a bodyless POST against path, decoding the response into
// E when the API returns one.
func Post[E any](ctx context.Context, c *Client, path string, query url.Values) (*E, error) {
	return do[E](ctx, c, http.MethodPost, path, query, nil)
}

// PutJSON performs a PUT with payload marshaled as the JSON request
// body.
func PutJSON[E any](ctx context.Context, c *Client, path string, query url.Values, payload any) (*E, error) {
	return do[E](ctx, c, http.MethodPut, path, query, payload)
}

// PostJSON performs a POST with payload marshaled as the JSON request
// body. Library mutations (playlist creation, adding tracks) use it.
func PostJSON[E any](ctx context.Context, c *Client, path string, query url.Values, payload any) (*E, error) {
	return do[E](ctx, c, http.MethodPost, path, query, payload)
}

// Delete performs a DELETE against path, discarding any response body.
func Delete(ctx context.Context, c *Client, path string, query url.Values) error {
	_, err := do[json.RawMessage](ctx, c, http.MethodDelete, path, query, nil)
	return err
}

func do[E any](ctx context.Context, c *Client, method, path string, query url.Values, payload any) (*E, error) {
	span := sentry.StartSpan(ctx, "musickit.request")
	span.Description = method + " " + path
	span.SetTag("method", method)
	span.SetTag("path", path)
	defer span.Finish()

	req, err := c.newRequest(ctx, method, path, query, payload)
	if err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		return nil, err
	}

	log.Tracef("musickit: %s %s", method, req.URL)

	resp, err := c.http.Do(req)
	if err != nil {
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, fmt.Errorf("musickit: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, fmt.Errorf("musickit: read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, &apiErr.Envelope); err != nil {
			log.Debugf("musickit: HTTP %d with undecodable error body", resp.StatusCode)
		}
		if resp.StatusCode == http.StatusNotFound {
			span.Status = sentry.SpanStatusNotFound
		} else {
			log.Warnf("musickit: %s %s failed: %v", method, path, apiErr)
			sentry.CaptureException(apiErr)
			span.Status = sentry.SpanStatusInternalError
		}
		return nil, apiErr
	}

	out := new(E)
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			sentry.CaptureException(err)
			span.Status = sentry.SpanStatusInternalError
			return nil, fmt.Errorf("musickit: decode response: %w", err)
		}
	}

	span.Status = sentry.SpanStatusOK
	return out, nil
}

// newRequest builds an outgoing request with auth headers attached. The
// path may already carry query parameters (paginated next hrefs do);
// query values are merged on top of them.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, payload any) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("musickit: invalid request path %q: %w", path, err)
	}

	q := u.Query()
	for key, values := range query {
		q[key] = values
	}
	q.Set("art[url]", "f")
	if q.Get("l") == "" {
		q.Set("l", c.localization)
	}
	u.RawQuery = q.Encode()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("musickit: encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.developerToken)
	if c.mediaUserToken != "" {
		req.Header.Set("Media-User-Token", c.mediaUserToken)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
