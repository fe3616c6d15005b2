package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("thread-1", "thread not found")))
	assert.Equal(t, KindInvalid, KindOf(Invalid("company_name is required")))
	assert.Equal(t, KindProvider, KindOf(Provider("finance", errors.New("timeout"))))
	assert.Equal(t, KindPersistence, KindOf(Persistence("chat_threads", errors.New("disconnected"))))
	assert.Equal(t, KindParse, KindOf(Parse("output-parser", errors.New("unexpected field"))))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("agent turn: %w", NotFound("t-9", "thread not found"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Provider("sentiment", cause)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x", "missing")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Invalid("bad")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Provider("p", errors.New("down"))))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(Parse("p", errors.New("bad json"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Persistence("c", errors.New("down"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("thread-42", "thread not found")
	assert.Equal(t, "thread not found (thread-42)", err.Error())

	wrapped := Provider("finance", errors.New("dial tcp: timeout"))
	assert.Contains(t, wrapped.Error(), "provider call failed")
	assert.Contains(t, wrapped.Error(), "dial tcp: timeout")
}
