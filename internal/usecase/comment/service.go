package comment

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

func (s *service) AddComment(ctx context.Context, payload domain.Payload, ownerID, threadID string) (domain.AddedComment, error) {
	err := domain.RequireParams("AddCommentUseCase", domain.Params{
		"ownerId":  ownerID,
		"threadId": threadID,
	})
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedComment{}, err
	}

	newComment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	return s.commentRepo.AddComment(ctx, newComment, ownerID, threadID)
}

// DeleteComment verifies existence, then ownership, then soft-deletes.
func (s *service) DeleteComment(ctx context.Context, commentID, ownerID string) error {
	err := domain.RequireParams("DeleteCommentUseCase", domain.Params{
		"commentId": commentID,
		"ownerId":   ownerID,
	})
	if err != nil {
		return err
	}

	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentOwner(ctx, commentID, ownerID); err != nil {
		return err
	}
	return s.commentRepo.DeleteCommentByID(ctx, commentID)
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}
