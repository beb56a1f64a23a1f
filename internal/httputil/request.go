package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindBody reads the JSON object in the request body.
//
// The body is decoded into data and validated with its binding tags. The
// raw object is returned for lenient parsing, numbers are json.Number.
// On failure, a 400 response has already been written.
func BindBody(c *gin.Context, data any) (map[string]any, error) {
	RegisterValidations()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return nil, err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(bytes.TrimSpace(body)) == 0 {
		NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
		return nil, ErrRequestBodyEmpty
	}

	var raw map[string]any
	d := json.NewDecoder(bytes.NewReader(body))
	d.UseNumber()
	if err := d.Decode(&raw); err != nil || raw == nil {
		log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("invalid body")
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return nil, ErrInvalidBody
	}

	if data == nil {
		return raw, nil
	}

	if err := json.Unmarshal(body, data); err != nil {
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return nil, ErrInvalidBody
	}

	if err := binding.Validator.ValidateStruct(data); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			err = errors.New(ValidationMessage(errs))
		}
		NewError(c, http.StatusBadRequest, err)
		return nil, err
	}

	return raw, nil
}

// BindData binds the JSON body to data and validates it.
func BindData(c *gin.Context, data any) error {
	_, err := BindBody(c, data)
	return err
}
