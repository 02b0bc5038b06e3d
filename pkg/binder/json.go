package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodySize is the maximum accepted request body size (64KB).
const DefaultMaxBodySize = 64 << 10

// JSON creates a strict JSON binder. Unknown fields and trailing data are
// rejected. String values are bound as sent; no normalisation is applied.
//
// Requests whose content type is not application/json yield
// ErrBinderNotApplicable so another binder can handle them.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" {
			return ErrBinderNotApplicable
		}

		body, err := readBody(r)
		if err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > DefaultMaxBodySize {
		return nil, ErrRequestTooLarge
	}
	return body, nil
}
