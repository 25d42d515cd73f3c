package thread

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// maxCommentFanOut bounds how many comments are expanded at once for one thread view.
const maxCommentFanOut = 8

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
}

var _ domain.ThreadUsecase = (*service)(nil)

// NewService will create a new thread service object.
// likeRepo may be nil, in which case every comment reports a likeCount of 0.
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.LikeRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
	}
}

func (s *service) AddThread(ctx context.Context, payload domain.Payload, ownerID string) (domain.AddedThread, error) {
	if err := domain.RequireParams("AddThreadUseCase", domain.Params{"ownerId": ownerID}); err != nil {
		return domain.AddedThread{}, err
	}

	newThread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	return s.threadRepo.AddThread(ctx, newThread, ownerID)
}

func (s *service) GetThreadByID(ctx context.Context, threadID string) (domain.DetailThread, error) {
	if err := domain.RequireParams("GetThreadByIdUseCase", domain.Params{"threadId": threadID}); err != nil {
		return domain.DetailThread{}, err
	}

	if err := s.threadRepo.VerifyThreadAvailability(ctx, threadID); err != nil {
		return domain.DetailThread{}, err
	}

	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.DetailThread{}, err
	}

	details, err := s.expandComments(ctx, comments)
	if err != nil {
		return domain.DetailThread{}, err
	}

	return domain.NewDetailThread(
		thread.ID,
		thread.Title,
		thread.Body,
		domain.FormatDate(thread.Date),
		thread.Username,
		details,
	)
}

/*
* Every comment is expanded in its own goroutine: its replies and likes are
* fetched independently and the result is written to the comment's own slot,
* so the chronological order returned by the repository survives the fan-out.
* The first failure cancels the group and the whole view is dropped.
 */
func (s *service) expandComments(ctx context.Context, comments []domain.CommentRecord) ([]domain.DetailComment, error) {
	details := make([]domain.DetailComment, len(comments))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCommentFanOut)

	for i, comment := range comments {
		g.Go(func() error {
			detail, err := s.expandComment(ctx, comment)
			if err != nil {
				return err
			}
			details[i] = detail
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logrus.Debugf("thread view aborted: %v", err)
		return nil, err
	}
	return details, nil
}

func (s *service) expandComment(ctx context.Context, comment domain.CommentRecord) (domain.DetailComment, error) {
	replies, err := s.replyRepo.GetRepliesByCommentID(ctx, comment.ID)
	if err != nil {
		return domain.DetailComment{}, err
	}

	detailReplies := make([]domain.DetailReply, 0, len(replies))
	for _, reply := range replies {
		// the store may hand back more than this comment's replies
		if reply.CommentID != comment.ID {
			continue
		}
		content := reply.Content
		if reply.IsDelete {
			content = domain.DeletedReplyContent
		}
		detailReply, err := domain.NewDetailReply(reply.ID, content, domain.FormatDate(reply.Date), reply.Username)
		if err != nil {
			return domain.DetailComment{}, err
		}
		detailReplies = append(detailReplies, detailReply)
	}

	likeCount := 0
	if s.likeRepo != nil {
		likes, err := s.likeRepo.GetLikesByCommentID(ctx, comment.ID)
		if err != nil {
			return domain.DetailComment{}, err
		}
		likeCount = len(likes)
	}

	content := comment.Content
	if comment.IsDelete {
		content = domain.DeletedCommentContent
	}

	return domain.NewDetailComment(
		comment.ID,
		comment.Username,
		content,
		domain.FormatDate(comment.Date),
		likeCount,
		detailReplies,
	)
}
