package reply_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
)

func TestAddReply(t *testing.T) {
	payload := domain.Payload{"content": "abc"}

	t.Run("success", func(t *testing.T) {
		replyRepo := mocks.NewReplyRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		threadRepo := mocks.NewThreadRepository(t)
		expected := domain.AddedReply{ID: "reply-123", Content: "abc", Owner: "user-123"}

		mock.InOrder(
			threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once(),
			commentRepo.On("VerifyCommentAvailability", mock.Anything, "comment-123").Return(nil).Once(),
			replyRepo.On("AddReply", mock.Anything, domain.AddReply{Content: "abc"}, "user-123", "comment-123").
				Return(expected, nil).Once(),
		)

		svc := reply.NewService(replyRepo, commentRepo, threadRepo)
		added, err := svc.AddReply(context.TODO(), payload, "user-123", "thread-123", "comment-123")

		require.NoError(t, err)
		assert.Equal(t, expected, added)
	})

	t.Run("comment not found", func(t *testing.T) {
		replyRepo := mocks.NewReplyRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		threadRepo := mocks.NewThreadRepository(t)

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		commentRepo.On("VerifyCommentAvailability", mock.Anything, "comment-xxx").
			Return(domain.NewNotFoundError("comment", "comment-xxx")).Once()

		svc := reply.NewService(replyRepo, commentRepo, threadRepo)
		_, err := svc.AddReply(context.TODO(), payload, "user-123", "thread-123", "comment-xxx")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		replyRepo.AssertNotCalled(t, "AddReply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("thread not found skips comment check", func(t *testing.T) {
		replyRepo := mocks.NewReplyRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		threadRepo := mocks.NewThreadRepository(t)

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-xxx").
			Return(domain.NewNotFoundError("thread", "thread-xxx")).Once()

		svc := reply.NewService(replyRepo, commentRepo, threadRepo)
		_, err := svc.AddReply(context.TODO(), payload, "user-123", "thread-xxx", "comment-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		commentRepo.AssertNotCalled(t, "VerifyCommentAvailability", mock.Anything, mock.Anything)
	})

	t.Run("missing comment id", func(t *testing.T) {
		svc := reply.NewService(mocks.NewReplyRepository(t), mocks.NewCommentRepository(t), mocks.NewThreadRepository(t))
		_, err := svc.AddReply(context.TODO(), payload, "user-123", "thread-123", "")

		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})
}

func TestDeleteReply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		replyRepo := mocks.NewReplyRepository(t)

		mock.InOrder(
			replyRepo.On("VerifyReplyAvailability", mock.Anything, "reply-123").Return(nil).Once(),
			replyRepo.On("VerifyReplyOwner", mock.Anything, "reply-123", "user-123").Return(nil).Once(),
			replyRepo.On("DeleteReplyByID", mock.Anything, "reply-123").Return(nil).Once(),
		)

		svc := reply.NewService(replyRepo, mocks.NewCommentRepository(t), mocks.NewThreadRepository(t))
		assert.NoError(t, svc.DeleteReply(context.TODO(), "reply-123", "user-123"))
	})

	t.Run("not the owner", func(t *testing.T) {
		replyRepo := mocks.NewReplyRepository(t)

		replyRepo.On("VerifyReplyAvailability", mock.Anything, "reply-123").Return(nil).Once()
		replyRepo.On("VerifyReplyOwner", mock.Anything, "reply-123", "user-456").Return(domain.ErrForbidden).Once()

		svc := reply.NewService(replyRepo, mocks.NewCommentRepository(t), mocks.NewThreadRepository(t))
		err := svc.DeleteReply(context.TODO(), "reply-123", "user-456")

		assert.ErrorIs(t, err, domain.ErrForbidden)
		replyRepo.AssertNotCalled(t, "DeleteReplyByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown reply", func(t *testing.T) {
		replyRepo := mocks.NewReplyRepository(t)

		replyRepo.On("VerifyReplyAvailability", mock.Anything, "reply-xxx").
			Return(domain.NewNotFoundError("reply", "reply-xxx")).Once()

		svc := reply.NewService(replyRepo, mocks.NewCommentRepository(t), mocks.NewThreadRepository(t))
		err := svc.DeleteReply(context.TODO(), "reply-xxx", "user-123")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
