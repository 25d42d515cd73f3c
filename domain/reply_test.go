package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestNewAddReply(t *testing.T) {
	_, err := domain.NewAddReply(domain.Payload{"content": ""})
	assert.ErrorIs(t, err, domain.ErrMissingRequiredProperty)

	_, err = domain.NewAddReply(domain.Payload{"content": 1.0})
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)

	r, err := domain.NewAddReply(domain.Payload{"content": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", r.Content)
}

func TestNewDetailReply(t *testing.T) {
	_, err := domain.NewDetailReply("reply-123", "abc", "", "dicoding")
	assert.ErrorIs(t, err, domain.ErrMissingRequiredProperty)

	r, err := domain.NewDetailReply("reply-123", domain.DeletedReplyContent, "2021-08-08T07:19:09.775Z", "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "**reply has been deleted**", r.Content)
}

func TestLikeStateString(t *testing.T) {
	assert.Equal(t, "LIKED", domain.Liked.String())
	assert.Equal(t, "NOT_LIKED", domain.NotLiked.String())
}
