package firestore

import (
	domainerrors "afyalink/internal/domain/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapStoreError converts a Firestore RPC error into the domain taxonomy.
// Authorization rejections must stay distinguishable from transient faults:
// the UI reacts differently to each and neither may be swallowed.
// notFound is the sentinel to return when the store reports a missing
// document; pass nil to surface missing documents as-is.
func mapStoreError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.PermissionDenied:
		return domainerrors.ErrPermissionDenied.WithDetails(err.Error())
	case codes.NotFound:
		if notFound != nil {
			return notFound
		}

		return err
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	default:
		return err
	}
}

// isNotFound reports whether the store signalled a missing document.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
