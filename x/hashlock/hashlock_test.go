package hashlock

import (
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	secret := []byte("my top secret")
	commitment := Hash(secret)

	assert.NoError(t, Check(secret, commitment))
	assert.True(t, errors.ErrUnauthorized.Is(Check([]byte("wrong guess"), commitment)))
	assert.True(t, errors.ErrUnauthorized.Is(Check(nil, commitment)))
}

func TestHashIsDeterministic(t *testing.T) {
	assert.Equal(t, Hash([]byte("pw")), Hash([]byte("pw")))
	assert.NotEqual(t, Hash([]byte("pw")), Hash([]byte("pw2")))
	assert.Len(t, Hash([]byte("pw")), CommitmentSize)
}

func TestValidateCommitment(t *testing.T) {
	assert.NoError(t, ValidateCommitment(Hash([]byte("pw"))))
	assert.True(t, errors.ErrInput.Is(ValidateCommitment([]byte("short"))))
	assert.True(t, errors.ErrInput.Is(ValidateCommitment(nil)))
}
