package utils

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// WriteJsonLine writes v as a single line of JSON.
func WriteJsonLine(w io.Writer, v any) error {
	if err := jsoniter.NewEncoder(w).Encode(v); err != nil {
		return errors.WithMessage(err, "encode json")
	}
	return nil
}
