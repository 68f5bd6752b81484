// Package request decodes and validates JSON request bodies.
package request

import (
	"bytes"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskly-api/pkg/cerror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("maxbytes", maxBytes)
	return v
}

// maxBytes bounds the encoded length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

// ParseBody decodes the body into out, rejecting unknown fields, then runs the
// struct's validate tags.
func ParseBody(ctx *fiber.Ctx, out interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(ctx.Body()))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(out); err != nil {
		return cerror.ErrorBadRequest.With(zap.Error(err))
	}

	return Validate(out)
}

func Validate(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return cerror.ErrorBadRequest.With(zap.Error(err))
	}

	return nil
}
