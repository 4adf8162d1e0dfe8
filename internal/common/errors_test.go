package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStatusHelpers(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, status.Code(InvalidArgumentError("bad input")))
	assert.Equal(t, codes.NotFound, status.Code(NotFoundError("missing")))
	assert.Equal(t, codes.FailedPrecondition, status.Code(FailedPreconditionError("not ready")))
	assert.Equal(t, codes.Internal, status.Code(InternalError("boom")))
	assert.Equal(t, codes.Internal, status.Code(InternalErrorf("boom: %d", 7)))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError("WRITE_FAILED", "writing destination", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "WRITE_FAILED")
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	cause := errors.New("nope")
	err := WrapError(cause, "opening file")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "opening file")
}
