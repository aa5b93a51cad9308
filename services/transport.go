package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/tastetrack/ordering/models"
)

// apiTransport is the shared HTTP plumbing for every upstream TasteTrack
// call. It maps the three failure shapes to the error taxonomy: network
// failure and non-2xx replies become TransportError, undecodable bodies
// become MalformedResponseError.
type apiTransport struct {
	baseURL    string
	httpClient *http.Client
}

func newAPITransport(baseURL string) apiTransport {
	return apiTransport{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorReply is the failure body shape the service uses; absence of a
// message falls back to generic transport text.
type errorReply struct {
	Message string `json:"message"`
}

func (t *apiTransport) do(ctx context.Context, method, path, bearer string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &models.TransportError{Message: "could not encode request", Err: err}
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL+path, reqBody)
	if err != nil {
		return &models.TransportError{Message: "could not build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return &models.TransportError{Message: "order service unreachable", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.TransportError{Message: "could not read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var reply errorReply
		_ = json.Unmarshal(data, &reply)
		message := reply.Message
		if message == "" {
			message = "order service request failed"
		}
		return &models.TransportError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &models.MalformedResponseError{Err: err}
	}
	return nil
}
