package errors

import (
	stderrors "errors"
	"fmt"

	"tauthy/ai"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrInvalidCredentials   = fmt.Errorf("invalid username or password")
	ErrInvalidRegistration  = fmt.Errorf("invalid registration")
	ErrTokenGeneration      = fmt.Errorf("could not generate session token")
	ErrNotFound             = fmt.Errorf("not found")
	ErrEmptyText            = fmt.Errorf("text is empty")
	ErrInvalidFeedback      = fmt.Errorf("feedback must be ai or human")
	ErrUnsupportedDocument  = fmt.Errorf("unsupported document type")
	ErrDocumentTooLarge     = fmt.Errorf("document is too large")
	ErrOpinionUnavailable   = fmt.Errorf("second opinion unavailable")
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")
)

// MapToGRPCError turns a domain error into a status error for the wire.
// Anything unrecognised is reported as Internal without its message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case stderrors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case stderrors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, ErrInvalidCredentials.Error())
	case stderrors.Is(err, ErrInvalidRegistration),
		stderrors.Is(err, ErrEmptyText),
		stderrors.Is(err, ErrInvalidFeedback),
		stderrors.Is(err, ErrUnsupportedDocument):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, ErrDocumentTooLarge):
		return status.Error(codes.ResourceExhausted, err.Error())
	case stderrors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, ErrOpinionUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case stderrors.Is(err, ai.ErrInvalidModel),
		stderrors.Is(err, ai.ErrDimensionMismatch),
		stderrors.Is(err, ai.ErrNonFiniteProbability):
		return status.Error(codes.FailedPrecondition, "classifier is misconfigured")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
