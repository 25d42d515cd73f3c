package reply

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	replyRepo   domain.ReplyRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.ReplyUsecase = (*service)(nil)

func NewService(replyRepo domain.ReplyRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		replyRepo:   replyRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

func (s *service) AddReply(ctx context.Context, payload domain.Payload, ownerID, threadID, commentID string) (domain.AddedReply, error) {
	err := domain.RequireParams("AddReplyUseCase", domain.Params{
		"ownerId":   ownerID,
		"threadId":  threadID,
		"commentId": commentID,
	})
	if err != nil {
		return domain.AddedReply{}, err
	}

	// parent before child
	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return domain.AddedReply{}, err
	}

	newReply, err := domain.NewAddReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	return s.replyRepo.AddReply(ctx, newReply, ownerID, commentID)
}

func (s *service) DeleteReply(ctx context.Context, replyID, ownerID string) error {
	err := domain.RequireParams("DeleteReplyUseCase", domain.Params{
		"replyId": replyID,
		"ownerId": ownerID,
	})
	if err != nil {
		return err
	}

	if err := s.replyRepo.VerifyReplyAvailability(ctx, replyID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyReplyOwner(ctx, replyID, ownerID); err != nil {
		return err
	}
	return s.replyRepo.DeleteReplyByID(ctx, replyID)
}
