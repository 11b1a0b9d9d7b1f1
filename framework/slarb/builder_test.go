package slarb_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/slarb/framework/slarb"
)

// ── factories ────────────────────────────────────────────────────────────────

func TestSuccess_Defaults(t *testing.T) {
	res := slarb.Success().Build()

	assert.True(t, res.Status)
	assert.Equal(t, http.StatusOK, res.HTTPCode)
	assert.Equal(t, "Request Successful", res.Message)
	assert.Nil(t, res.Data)
}

func TestError_Defaults(t *testing.T) {
	res := slarb.Error().Build()

	assert.False(t, res.Status)
	assert.Equal(t, http.StatusBadRequest, res.HTTPCode)
	assert.Equal(t, "Request Failed", res.Message)
	assert.Nil(t, res.Data)
}

func TestRespond_Defaults(t *testing.T) {
	for _, status := range []bool{true, false} {
		res := slarb.Respond(status).Build()

		assert.Equal(t, status, res.Status)
		assert.Equal(t, http.StatusContinue, res.HTTPCode)
		assert.Equal(t, "Request is processing", res.Message)
		assert.Nil(t, res.Data)
	}
}

// ── chaining ─────────────────────────────────────────────────────────────────

func TestBuilder_ChainMessageAndData(t *testing.T) {
	data := map[string]any{"a": 1}
	res := slarb.Success().WithMessage("m").WithData(data).Build()

	assert.True(t, res.Status)
	assert.Equal(t, http.StatusOK, res.HTTPCode)
	assert.Equal(t, "m", res.Message)
	assert.Equal(t, data, res.Data)
}

func TestBuilder_WithHTTPCode_Accepted(t *testing.T) {
	b, err := slarb.Error().WithHTTPCode(http.StatusNotFound)
	require.NoError(t, err)

	res := b.WithMessage("missing").Build()
	assert.Equal(t, http.StatusNotFound, res.HTTPCode)
	assert.Equal(t, "missing", res.Message)
}

func TestBuilder_WithHTTPCode_RejectedLeavesBuilderUnchanged(t *testing.T) {
	orig := slarb.Error().WithMessage("kept").WithData("payload")

	b, err := orig.WithHTTPCode(http.StatusOK)
	require.Error(t, err)
	assert.ErrorIs(t, err, slarb.ErrInvalidHTTPCode)

	assert.Equal(t, http.StatusBadRequest, b.HTTPCode())
	assert.Equal(t, "kept", b.Message())
	assert.Equal(t, "payload", b.Data())
	assert.Equal(t, orig, b)
}

func TestBuilder_WithMethodsDoNotMutateReceiver(t *testing.T) {
	base := slarb.Success()

	_ = base.WithMessage("other")
	_ = base.WithData([]int{1, 2})
	_, err := base.WithHTTPCode(http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, slarb.SuccessMessage, base.Message())
	assert.Nil(t, base.Data())
	assert.Equal(t, http.StatusOK, base.HTTPCode())
}

func TestBuilder_SettersAreIdempotent(t *testing.T) {
	once := slarb.Success().WithMessage("m").WithData("d")
	twice := once.WithMessage("m").WithData("d")

	assert.Equal(t, once.Build(), twice.Build())
}

func TestBuilder_WithDataNil(t *testing.T) {
	res := slarb.Success().WithData("x").WithData(nil).Build()
	assert.Nil(t, res.Data)
}

func TestBuilder_BuildIsRepeatable(t *testing.T) {
	b := slarb.Success().WithData(42)
	assert.Equal(t, b.Build(), b.Build())

	// mutators stay usable after Build
	res := b.WithMessage("after").Build()
	assert.Equal(t, "after", res.Message)
}

func TestBuilder_RespondThenCode(t *testing.T) {
	b, err := slarb.Respond(false).WithHTTPCode(http.StatusConflict)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, b.Build().HTTPCode)

	_, err = slarb.Respond(true).WithHTTPCode(http.StatusConflict)
	assert.ErrorIs(t, err, slarb.ErrInvalidHTTPCode)
}

// ── Must ─────────────────────────────────────────────────────────────────────

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() {
		b := slarb.Must(slarb.Success().WithHTTPCode(http.StatusCreated))
		assert.Equal(t, http.StatusCreated, b.HTTPCode())
	})
	assert.Panics(t, func() {
		slarb.Must(slarb.Success().WithHTTPCode(http.StatusInternalServerError))
	})
}

// ── Response ─────────────────────────────────────────────────────────────────

func TestResponse_JSONHasExactlyThreeKeys(t *testing.T) {
	res := slarb.Must(slarb.Error().WithHTTPCode(http.StatusUnprocessableEntity)).
		WithMessage("invalid").
		Build()

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	assert.Len(t, m, 3)
	assert.Equal(t, false, m[slarb.KeyStatus])
	assert.Equal(t, "invalid", m[slarb.KeyMessage])
	v, ok := m[slarb.KeyData]
	assert.True(t, ok, "data key must be present even when nil")
	assert.Nil(t, v)
}

func TestResponse_Body(t *testing.T) {
	res := slarb.Success().WithData([]string{"x"}).Build()

	assert.Equal(t, map[string]any{
		"status":  true,
		"message": slarb.SuccessMessage,
		"data":    []string{"x"},
	}, res.Body())
}

func TestResponse_StatusText(t *testing.T) {
	assert.Equal(t, "OK", slarb.Success().Build().StatusText())
	assert.Equal(t, "Bad Request", slarb.Error().Build().StatusText())
}
