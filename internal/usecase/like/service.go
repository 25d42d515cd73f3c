package like

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	threadRepo  domain.ThreadRepository
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(likeRepo domain.LikeRepository, commentRepo domain.CommentRepository, threadRepo domain.ThreadRepository) *service {
	return &service{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		threadRepo:  threadRepo,
	}
}

// ToggleLike flips the like of userID on commentID. The check-then-write is not
// serialized here; a concurrent duplicate like is rejected by the store's
// (owner, comment) uniqueness and surfaces as domain.ErrConflict.
func (s *service) ToggleLike(ctx context.Context, userID, threadID, commentID string) (domain.LikeState, error) {
	err := domain.RequireParams("LikeUseCase", domain.Params{
		"userId":    userID,
		"threadId":  threadID,
		"commentId": commentID,
	})
	if err != nil {
		return domain.NotLiked, err
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.NotLiked, err
	}
	if err := s.commentRepo.VerifyCommentAvailability(ctx, commentID); err != nil {
		return domain.NotLiked, err
	}

	isLiked, err := s.likeRepo.VerifyLikeAvailability(ctx, userID, commentID)
	if err != nil {
		return domain.NotLiked, err
	}

	if isLiked {
		if err := s.likeRepo.DeleteLike(ctx, userID, commentID); err != nil {
			return domain.Liked, err
		}
		logrus.Debugf("user %s unliked comment %s", userID, commentID)
		return domain.NotLiked, nil
	}

	if _, err := s.likeRepo.AddLike(ctx, userID, commentID); err != nil {
		return domain.NotLiked, err
	}
	logrus.Debugf("user %s liked comment %s", userID, commentID)
	return domain.Liked, nil
}
