package coin

import (
	"math"
	"testing"

	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		coin    Coin
		wantErr *errors.Error
	}{
		"valid":           {coin: NewCoin("RED", 7), wantErr: nil},
		"zero amount":     {coin: NewCoin("RED", 0), wantErr: nil},
		"negative amount": {coin: NewCoin("RED", -1), wantErr: errors.ErrAmount},
		"empty color":     {coin: NewCoin("", 1), wantErr: errors.ErrInput},
		"short color":     {coin: NewCoin("ab", 1), wantErr: errors.ErrInput},
		"bad characters":  {coin: NewCoin("no spaces", 1), wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coin.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err))
			}
		})
	}
}

func TestCoinAddOverflow(t *testing.T) {
	c, err := NewCoin("RED", math.MaxInt64).Add(NewCoin("RED", 1))
	assert.True(t, errors.ErrOverflow.Is(err))
	assert.Equal(t, Coin{}, c)
}

func TestCoinAddColorMismatch(t *testing.T) {
	_, err := NewCoin("RED", 1).Add(NewCoin("BLUE", 1))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestCoinsAddSubtract(t *testing.T) {
	var wallet Coins

	wallet, err := wallet.Add(NewCoin("RED", 100))
	require.NoError(t, err)
	wallet, err = wallet.Add(NewCoin("BLUE", 50))
	require.NoError(t, err)

	assert.Equal(t, int64(100), wallet.AmountOf("RED"))
	assert.Equal(t, int64(50), wallet.AmountOf("BLUE"))
	assert.Equal(t, int64(0), wallet.AmountOf("GREEN"))

	wallet, err = wallet.Subtract(NewCoin("RED", 100))
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.AmountOf("RED"))
	// fully drained colors drop out of the set
	assert.Len(t, wallet, 1)

	_, err = wallet.Subtract(NewCoin("BLUE", 51))
	assert.True(t, errors.ErrAmount.Is(err))
}

func TestCoinsSubtractPartial(t *testing.T) {
	wallet := Coins{NewCoin("RED", 100)}

	// a positive subtraction must not be rejected by the sign check
	wallet, err := wallet.Subtract(NewCoin("RED", 40))
	require.NoError(t, err)
	assert.Equal(t, int64(60), wallet.AmountOf("RED"))

	wallet, err = wallet.Subtract(NewCoin("RED", 60))
	require.NoError(t, err)
	assert.Len(t, wallet, 0)
}

func TestCoinsValidate(t *testing.T) {
	ok := Coins{NewCoin("RED", 1), NewCoin("BLUE", 2)}
	assert.NoError(t, ok.Validate())

	dup := Coins{NewCoin("RED", 1), NewCoin("RED", 2)}
	assert.True(t, errors.ErrDuplicate.Is(dup.Validate()))
}

func TestCoinsEquals(t *testing.T) {
	a := Coins{NewCoin("RED", 1), NewCoin("BLUE", 2)}
	b := Coins{NewCoin("BLUE", 2), NewCoin("RED", 1)}
	assert.True(t, a.Equals(b))

	c := Coins{NewCoin("RED", 1)}
	assert.False(t, a.Equals(c))
}
