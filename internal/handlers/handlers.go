package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"grocery-app/internal/validation"
)

const errInternal = "Internal server error"

// Publisher receives a change event after every successful mutation.
type Publisher interface {
	Publish(topic, action string, data any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, string, any) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeBody decodes exactly one JSON value from the request body into dst.
// An empty body leaves dst untouched.
func decodeBody(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return nil
	}
	dec := json.NewDecoder(c.Request.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// bindAndValidate decodes the JSON body into dst and validates it. An empty
// body decodes as {}. On failure the 400 (or 500) response has been written
// and false is returned.
func bindAndValidate(c *gin.Context, v *validation.Validator, log *slog.Logger, dst any) bool {
	if err := decodeBody(c, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.DecodeError(err).Issues})
		return false
	}

	if err := v.Struct(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Issues})
			return false
		}
		log.Error("validator failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
		return false
	}
	return true
}

// paramID reads the :id path parameter leniently: leading whitespace and an
// optional sign, then the longest run of decimal digits ("12abc" is 12). ok is
// false when no digits lead the value; such an id matches nothing.
func paramID(c *gin.Context) (id int, ok bool) {
	raw := strings.TrimLeft(c.Param("id"), " \t\n\r\v\f")

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	id, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return id, true
}
