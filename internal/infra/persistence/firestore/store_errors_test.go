package firestore

import (
	"testing"

	domainerrors "afyalink/internal/domain/errors"
	"afyalink/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapStoreError_PermissionDenied(t *testing.T) {
	err := mapStoreError(status.Error(codes.PermissionDenied, "missing or insufficient permissions"), nil)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPermissionDenied.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "insufficient permissions")
}

func TestMapStoreError_NotFoundUsesSentinel(t *testing.T) {
	err := mapStoreError(status.Error(codes.NotFound, "no such document"), repository.ErrOrderNotFound)

	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestMapStoreError_NotFoundWithoutSentinel(t *testing.T) {
	raw := status.Error(codes.NotFound, "no such document")

	assert.Equal(t, raw, mapStoreError(raw, nil))
}

func TestMapStoreError_TransientCodes(t *testing.T) {
	for _, code := range []codes.Code{codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted} {
		err := mapStoreError(status.Error(code, "store down"), nil)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr, "code %s", code)
		assert.Equal(t, domainerrors.ErrStoreUnavailable.ErrorCode(), appErr.ErrorCode())
	}
}

func TestMapStoreError_PassesThroughUnknown(t *testing.T) {
	raw := status.Error(codes.InvalidArgument, "bad field path")

	assert.Equal(t, raw, mapStoreError(raw, nil))
	assert.NoError(t, mapStoreError(nil, nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(status.Error(codes.NotFound, "gone")))
	assert.False(t, isNotFound(status.Error(codes.Internal, "boom")))
}
