package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/agency-site-api/internal/domain"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/httpclient"
)

// restPrefix is the path under which the hosted project exposes tables.
const restPrefix = "/rest/v1/"

// requester owns the HTTP request lifecycle for table calls: body
// marshaling, execution, response cleanup, error translation and decoding.
type requester struct {
	client     *httpclient.Client
	translator *translator
	logger     *slog.Logger
}

// do sends method to /rest/v1/{table}?{query}. reqBody is JSON encoded when
// non-nil; a 2xx body is decoded into respBody when non-nil.
func (r *requester) do(ctx context.Context, method, table string, query url.Values, reqBody, respBody any) error {
	target := r.client.BaseURL() + restPrefix + table
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader = http.NoBody
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, table, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, table, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Prefer", "return=representation")
	}

	return r.execute(req, respBody)
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

func (r *requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status still hand back the response.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !isSuccess(resp.StatusCode) {
				return r.translator.translate(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if !isSuccess(resp.StatusCode) {
		translateErr := r.translator.translate(resp)
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("error", translateErr.Error()),
		)
		return translateErr
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w: %w",
				req.Method, req.URL.Path, domain.ErrUnavailable, err)
		}
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
