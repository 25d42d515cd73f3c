package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
)

const (
	// KeyCommentLikes is a hash per comment: field = user id, value = likeEntry
	KeyCommentLikes = "comment:%s:likes"
)

type likeEntry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type likeStore struct {
	client *redis.Client
	newID  repository.IDGenerator
	now    func() time.Time
}

var _ domain.LikeRepository = (*likeStore)(nil)

// NewLikeStore keeps likes in Redis hashes. HSETNX gives the same
// one-like-per-(user, comment) guarantee as the SQL unique index.
func NewLikeStore(client *redis.Client, gen repository.IDGenerator) *likeStore {
	return &likeStore{
		client: client,
		newID:  gen,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *likeStore) VerifyLikeAvailability(ctx context.Context, userID, commentID string) (bool, error) {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	ok, err := s.client.HExists(ctx, key, userID).Result()
	if err != nil {
		return false, domain.NewPersistenceError("verify like", err)
	}
	return ok, nil
}

func (s *likeStore) AddLike(ctx context.Context, userID, commentID string) (string, error) {
	entry := likeEntry{
		ID:        repository.PrefixedID("like", s.newID),
		CreatedAt: s.now(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return "", domain.NewPersistenceError("add like", err)
	}

	key := fmt.Sprintf(KeyCommentLikes, commentID)
	set, err := s.client.HSetNX(ctx, key, userID, string(data)).Result()
	if err != nil {
		return "", domain.NewPersistenceError("add like", err)
	}
	if !set {
		return "", domain.ErrConflict
	}
	return entry.ID, nil
}

func (s *likeStore) DeleteLike(ctx context.Context, userID, commentID string) error {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	if err := s.client.HDel(ctx, key, userID).Err(); err != nil {
		return domain.NewPersistenceError("delete like", err)
	}
	return nil
}

func (s *likeStore) GetLikesByCommentID(ctx context.Context, commentID string) ([]domain.Like, error) {
	key := fmt.Sprintf(KeyCommentLikes, commentID)
	data, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, domain.NewPersistenceError("get likes", err)
	}

	res := make([]domain.Like, 0, len(data))
	for userID, raw := range data {
		var entry likeEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, domain.NewPersistenceError("get likes", fmt.Errorf("decode like of user %s: %w", userID, err))
		}
		res = append(res, domain.Like{
			ID:        entry.ID,
			Owner:     userID,
			CommentID: commentID,
			CreatedAt: entry.CreatedAt,
		})
	}
	return res, nil
}
