package thread_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
)

var baseDate = time.Date(2021, 8, 8, 7, 19, 9, 775_000_000, time.UTC)

func TestAddThread(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		expected := domain.AddedThread{ID: "thread-123", Title: "abc", Owner: "user-123"}
		threadRepo.On("AddThread", mock.Anything, domain.AddThread{Title: "abc", Body: "abc"}, "user-123").
			Return(expected, nil).Once()

		svc := thread.NewService(threadRepo, nil, nil, nil)
		added, err := svc.AddThread(context.TODO(), domain.Payload{"title": "abc", "body": "abc"}, "user-123")

		require.NoError(t, err)
		assert.Equal(t, expected, added)
	})

	t.Run("missing owner", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)

		svc := thread.NewService(threadRepo, nil, nil, nil)
		_, err := svc.AddThread(context.TODO(), domain.Payload{"title": "abc", "body": "abc"}, "")

		assert.ErrorIs(t, err, domain.ErrMissingParameter)
		threadRepo.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid payload", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)

		svc := thread.NewService(threadRepo, nil, nil, nil)
		_, err := svc.AddThread(context.TODO(), domain.Payload{"title": "abc"}, "user-123")

		assert.ErrorIs(t, err, domain.ErrMissingRequiredProperty)
	})
}

func TestGetThreadByID(t *testing.T) {
	threadDetail := domain.ThreadDetail{
		ID:       "thread-123",
		Title:    "abc",
		Body:     "abc",
		Date:     baseDate,
		Username: "dicoding",
	}
	comments := []domain.CommentRecord{
		{ID: "comment-123", ThreadID: "thread-123", Username: "dicoding", Content: "abc", Date: baseDate},
		{ID: "comment-321", ThreadID: "thread-123", Username: "john", Content: "secret", Date: baseDate.Add(time.Minute), IsDelete: true},
	}

	t.Run("success", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		replyRepo := mocks.NewReplyRepository(t)
		likeRepo := mocks.NewLikeRepository(t)

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		threadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(threadDetail, nil).Once()
		commentRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(comments, nil).Once()

		replyRepo.On("GetRepliesByCommentID", mock.Anything, "comment-123").Return([]domain.ReplyRecord{
			{ID: "reply-123", CommentID: "comment-123", Username: "dicoding", Content: "abc", Date: baseDate.Add(2 * time.Minute)},
			{ID: "reply-999", CommentID: "comment-999", Username: "john", Content: "stray", Date: baseDate},
			{ID: "reply-321", CommentID: "comment-123", Username: "john", Content: "hidden", Date: baseDate.Add(3 * time.Minute), IsDelete: true},
		}, nil).Once()
		replyRepo.On("GetRepliesByCommentID", mock.Anything, "comment-321").Return([]domain.ReplyRecord{}, nil).Once()

		likeRepo.On("GetLikesByCommentID", mock.Anything, "comment-123").Return([]domain.Like{
			{ID: "like-1", Owner: "user-1", CommentID: "comment-123"},
			{ID: "like-2", Owner: "user-2", CommentID: "comment-123"},
		}, nil).Once()
		likeRepo.On("GetLikesByCommentID", mock.Anything, "comment-321").Return([]domain.Like{}, nil).Once()

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
		detail, err := svc.GetThreadByID(context.TODO(), "thread-123")
		require.NoError(t, err)

		assert.Equal(t, "thread-123", detail.ID)
		assert.Equal(t, "2021-08-08T07:19:09.775Z", detail.Date)
		require.Len(t, detail.Comments, 2)

		first := detail.Comments[0]
		assert.Equal(t, "comment-123", first.ID)
		assert.Equal(t, "abc", first.Content)
		assert.Equal(t, 2, first.LikeCount)
		require.Len(t, first.Replies, 2)
		assert.Equal(t, "reply-123", first.Replies[0].ID)
		assert.Equal(t, "abc", first.Replies[0].Content)
		assert.Equal(t, "reply-321", first.Replies[1].ID)
		assert.Equal(t, "**balasan telah dihapus**", first.Replies[1].Content)
		assert.Equal(t, "john", first.Replies[1].Username)

		second := detail.Comments[1]
		assert.Equal(t, "comment-321", second.ID)
		assert.Equal(t, "**komentar telah dihapus**", second.Content)
		assert.Equal(t, 0, second.LikeCount)
		assert.NotNil(t, second.Replies)
		assert.Empty(t, second.Replies)
	})

	t.Run("without like store", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		replyRepo := mocks.NewReplyRepository(t)

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		threadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(threadDetail, nil).Once()
		commentRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(comments[:1], nil).Once()
		replyRepo.On("GetRepliesByCommentID", mock.Anything, "comment-123").Return([]domain.ReplyRecord{}, nil).Once()

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, nil)
		detail, err := svc.GetThreadByID(context.TODO(), "thread-123")
		require.NoError(t, err)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, 0, detail.Comments[0].LikeCount)
	})

	t.Run("no comments", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		replyRepo := mocks.NewReplyRepository(t)
		likeRepo := mocks.NewLikeRepository(t)

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		threadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(threadDetail, nil).Once()
		commentRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return([]domain.CommentRecord{}, nil).Once()

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
		detail, err := svc.GetThreadByID(context.TODO(), "thread-123")
		require.NoError(t, err)
		assert.NotNil(t, detail.Comments)
		assert.Empty(t, detail.Comments)
	})

	t.Run("thread not found", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		commentRepo := mocks.NewCommentRepository(t)

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-xxx").
			Return(domain.NewNotFoundError("thread", "thread-xxx")).Once()

		svc := thread.NewService(threadRepo, commentRepo, nil, nil)
		_, err := svc.GetThreadByID(context.TODO(), "thread-xxx")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		threadRepo.AssertNotCalled(t, "GetThreadByID", mock.Anything, mock.Anything)
		commentRepo.AssertNotCalled(t, "GetCommentsByThreadID", mock.Anything, mock.Anything)
	})

	t.Run("missing thread id", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)

		svc := thread.NewService(threadRepo, nil, nil, nil)
		_, err := svc.GetThreadByID(context.TODO(), "")

		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})

	t.Run("reply fetch fails", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		replyRepo := &mocks.ReplyRepository{}
		likeRepo := &mocks.LikeRepository{}

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		threadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(threadDetail, nil).Once()
		commentRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(comments, nil).Once()

		dbErr := domain.NewPersistenceError("get replies", errors.New("connection reset"))
		replyRepo.On("GetRepliesByCommentID", mock.Anything, mock.Anything).Return(nil, dbErr)
		likeRepo.On("GetLikesByCommentID", mock.Anything, mock.Anything).Return([]domain.Like{}, nil)

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
		detail, err := svc.GetThreadByID(context.TODO(), "thread-123")

		assert.ErrorIs(t, err, domain.ErrPersistence)
		assert.Empty(t, detail.ID)
		likeRepo.AssertNotCalled(t, "GetLikesByCommentID", mock.Anything, mock.Anything)
	})

	t.Run("order survives fan-out", func(t *testing.T) {
		threadRepo := mocks.NewThreadRepository(t)
		commentRepo := mocks.NewCommentRepository(t)
		replyRepo := &mocks.ReplyRepository{}
		likeRepo := &mocks.LikeRepository{}

		many := make([]domain.CommentRecord, 30)
		for i := range many {
			many[i] = domain.CommentRecord{
				ID:       "comment-" + string(rune('a'+i%26)) + string(rune('a'+i/26)),
				ThreadID: "thread-123",
				Username: "dicoding",
				Content:  "abc",
				Date:     baseDate.Add(time.Duration(i) * time.Second),
			}
		}

		threadRepo.On("VerifyThreadAvailability", mock.Anything, "thread-123").Return(nil).Once()
		threadRepo.On("GetThreadByID", mock.Anything, "thread-123").Return(threadDetail, nil).Once()
		commentRepo.On("GetCommentsByThreadID", mock.Anything, "thread-123").Return(many, nil).Once()
		replyRepo.On("GetRepliesByCommentID", mock.Anything, mock.Anything).
			After(time.Millisecond).Return([]domain.ReplyRecord{}, nil)
		likeRepo.On("GetLikesByCommentID", mock.Anything, mock.Anything).Return([]domain.Like{}, nil)

		svc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
		detail, err := svc.GetThreadByID(context.TODO(), "thread-123")
		require.NoError(t, err)
		require.Len(t, detail.Comments, len(many))
		for i := range many {
			assert.Equal(t, many[i].ID, detail.Comments[i].ID)
		}
	})
}
