/*
Package hashlock implements the commit/reveal primitive that gates the
hash-locked swap variant. At start time a commitment (the digest of a
secret) is fixed; whoever later presents the matching pre-image is
authorized to release the locked value.

The digest is blake2b-256, matching the hashing utility of the hosting
system, so commitments computed off-chain interoperate.
*/
package hashlock

import (
	"bytes"

	"github.com/iov-one/tokenswap/errors"
	"golang.org/x/crypto/blake2b"
)

// CommitmentSize is the size of a commitment in bytes.
const CommitmentSize = blake2b.Size256

// Hash computes the one-way digest of given secret.
func Hash(secret []byte) []byte {
	h := blake2b.Sum256(secret)
	return h[:]
}

// Check returns nil only if the digest of the secret equals the
// commitment.
func Check(secret, commitment []byte) error {
	if !bytes.Equal(Hash(secret), commitment) {
		return errors.Wrap(errors.ErrUnauthorized, "wrong secret")
	}
	return nil
}

// ValidateCommitment ensures a commitment has the exact digest size.
func ValidateCommitment(commitment []byte) error {
	if len(commitment) != CommitmentSize {
		return errors.Wrapf(errors.ErrInput, "commitment must be exactly %d bytes", CommitmentSize)
	}
	return nil
}
