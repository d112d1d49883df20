package recruitment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const contentType = "application/json"

// statusError carries a non-2xx response. Detail is the machine-readable
// failure reason from the body when present, else a generic status message.
type statusError struct {
	StatusCode int
	Detail     string
}

func (e *statusError) Error() string {
	return e.Detail
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func (c *Client) getJSON(path string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodGet, c.APIURL+path, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.do(req, target)
}

func (c *Client) postJSON(path string, body any, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.APIURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

func (c *Client) putJSON(path string, body any, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPut, c.APIURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", contentType)

	return c.do(req, target)
}

// postForm sends an application/x-www-form-urlencoded body. The login
// endpoint is the only consumer.
func (c *Client) postForm(path string, data url.Values, target any) error {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.APIURL+path, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, target)
}

// FilePart is one uploaded document within a multipart request. Repeated
// parts may share the same Field name to represent a list of files.
type FilePart struct {
	Field   string
	Name    string
	Content []byte
}

func (c *Client) postMultipart(path string, q url.Values, files []FilePart, target any) error {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return err
		}

		if _, err = part.Write(f.Content); err != nil {
			return err
		}
	}
	w.Close()

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.APIURL+path, &b)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	c.setHeaders(req)

	c.logger.Debug("make request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: req.Method + " " + req.URL.Path, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := extractDetail(data, resp.StatusCode)

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return &AuthError{Detail: detail}
		}

		return &statusError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
}

// extractDetail pulls the backend failure reason out of an error body.
// Bodies without a detail field fall back to a status-code message.
func extractDetail(data []byte, code int) string {
	var parsed detailResponse
	if err := json.Unmarshal(data, &parsed); err == nil && strings.TrimSpace(parsed.Detail) != "" {
		return parsed.Detail
	}

	return fmt.Sprintf("error: status code %d", code)
}
