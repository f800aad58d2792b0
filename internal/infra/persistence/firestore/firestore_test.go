package firestore

import (
	"context"
	"testing"

	"truefans/internal/domain/repository"
	"truefans/internal/errors"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "deadline exceeded", err: status.Error(codes.DeadlineExceeded, "context deadline exceeded"), target: context.DeadlineExceeded},
		{name: "wrapped deadline exceeded", err: errors.Wrap(status.Error(codes.DeadlineExceeded, "deadline"), "failed to read pass in transaction"), target: context.DeadlineExceeded},
		{name: "canceled", err: status.Error(codes.Canceled, "context canceled"), target: context.Canceled},
		{name: "domain error passes through", err: repository.ErrPredicateFailed, target: repository.ErrPredicateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			assert.True(t, errors.Is(got, tt.target), "got %v", got)
		})
	}
}

func TestClassify_OtherCodesUnchanged(t *testing.T) {
	for _, code := range []codes.Code{codes.Unavailable, codes.PermissionDenied, codes.Internal} {
		err := status.Error(code, "boom")
		got := classify(err)

		assert.Equal(t, err, got)
		assert.False(t, errors.Is(got, context.DeadlineExceeded))
		assert.Equal(t, code, status.Code(got))
	}
}

func TestClassify_StoreTimeoutSurvivesWrapping(t *testing.T) {
	err := errors.Wrap(classify(status.Error(codes.DeadlineExceeded, "deadline")), "failed to find pass by ID")

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
