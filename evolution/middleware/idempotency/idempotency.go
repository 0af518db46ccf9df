package idempotency

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"

	idempotencybiz "elementalsouls.app/evolution/business/idempotency"
	"elementalsouls.app/evolution/model"
)

var (
	IDEMPOTENCY_HEADER = "X-Idempotency-Key"
)

const maxKeyLength = 255

// Executor is the idempotency ledger as seen by the middleware.
type Executor interface {
	Execute(ctx context.Context, key model.IdempotencyKey, requestHash string, work idempotencybiz.Work) (bool, json.RawMessage, error)
}

// Handle guards next with the idempotency ledger. Requests without a key pass
// straight through; keyed requests run at most once and later retries get
// the recorded response.
func Handle(exec Executor, req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, keyErr := extractIdempotencyKey(req)
	if keyErr != nil {
		return middleware.Response{Err: keyErr}
	}
	if idempotencyKey == "" {
		return next(req)
	}

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	var (
		ran      bool
		response middleware.Response
	)
	_, cached, err := exec.Execute(req.Context(), cacheKey, generateRequestHash(req), func(ctx context.Context) (json.RawMessage, error) {
		ran = true
		response = next(req)
		if response.Err != nil {
			return nil, response.Err
		}
		return json.Marshal(response.Payload)
	})
	if ran {
		return response
	}
	if err != nil {
		return middleware.Response{Err: err}
	}

	return replayResponse(req, cached, idempotencyKey)
}

// extractIdempotencyKey returns the trimmed key header, or "" when absent.
func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	headers := req.Data().Headers
	if headers == nil {
		return "", nil
	}

	idempotencyKey := strings.TrimSpace(headers.Get(IDEMPOTENCY_HEADER))
	if len(idempotencyKey) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is too long"}
	}
	return idempotencyKey, nil
}

// generateRequestHash digests the path and payload. Requests carry the wallet
// in the payload, so one key cannot be replayed across wallets.
func generateRequestHash(req middleware.Request) string {
	var body []byte
	if payload := req.Data().Payload; payload != nil {
		var err error
		if body, err = json.Marshal(payload); err != nil {
			rlog.Error("Failed to marshal request body", "error", err)
		}
	}
	return idempotencybiz.HashRequest([]byte(req.Data().Path), body)
}

// replayResponse decodes a recorded payload into the endpoint's response type.
func replayResponse(req middleware.Request, cached json.RawMessage, idempotencyKey string) middleware.Response {
	rlog.Info("Returning cached response", "key", idempotencyKey)

	api := req.Data().API
	if api == nil || api.ResponseType == nil {
		return middleware.Response{}
	}

	responseType := api.ResponseType
	if responseType.Kind() == reflect.Pointer {
		responseType = responseType.Elem()
	}
	responseValue := reflect.New(responseType).Interface()

	if err := json.Unmarshal(cached, responseValue); err != nil {
		rlog.Error("Failed to unmarshal cached response into correct type", "error", err, "key", idempotencyKey)
		return middleware.Response{Err: model.Internal("failed to replay recorded response")}
	}
	return middleware.Response{Payload: responseValue}
}
