package errors

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Taxonomy roots. Every leaf below wraps exactly one of them.
var (
	ErrValidation = fmt.Errorf("validation error")
	ErrRemote     = fmt.Errorf("remote error")
	ErrAuth       = fmt.Errorf("auth error")
)

var (
	ErrEmptyMessage         = fmt.Errorf("%w: message is empty", ErrValidation)
	ErrInvalidPassword      = fmt.Errorf("%w: password does not meet requirements", ErrValidation)
	ErrMalformedPushPayload = fmt.Errorf("%w: malformed push payload", ErrValidation)
	ErrInvalidCredentials   = fmt.Errorf("%w: invalid username or password", ErrAuth)
	ErrUserAlreadyExists    = fmt.Errorf("%w: user already exists", ErrAuth)
	ErrNoSession            = fmt.Errorf("%w: no active session", ErrAuth)
	ErrTokenGeneration      = fmt.Errorf("%w: token generation failed", ErrAuth)
	ErrInvalidToken         = fmt.Errorf("%w: invalid or revoked device token", ErrAuth)
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)

// Remote wraps a storage or transport failure into the ErrRemote family.
func Remote(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRemote, op, err)
}

func IsNoSession(err error) bool {
	return errors.Is(err, ErrNoSession)
}

// Leaves a client can recognise again from a status message.
var known = []error{
	ErrEmptyMessage, ErrInvalidPassword, ErrMalformedPushPayload,
	ErrInvalidCredentials, ErrUserAlreadyExists, ErrNoSession, ErrTokenGeneration, ErrInvalidToken,
}

// MapToGRPCError turns a domain error into a gRPC status. Remote and unknown
// failures are not detailed to the caller.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrNoSession):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrAuth):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// FromGRPCError turns a status received from a server back into a domain
// error, so callers keep matching on the same sentinels locally and remotely.
func FromGRPCError(op string, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return Remote(op, err)
	}
	for _, sentinel := range known {
		if st.Message() == sentinel.Error() {
			return sentinel
		}
	}
	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrValidation, strings.TrimPrefix(st.Message(), ErrValidation.Error()+": "))
	case codes.Unauthenticated:
		return ErrInvalidToken
	case codes.AlreadyExists:
		return ErrUserAlreadyExists
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrAuth, strings.TrimPrefix(st.Message(), ErrAuth.Error()+": "))
	default:
		return Remote(op, err)
	}
}
