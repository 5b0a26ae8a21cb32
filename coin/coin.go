/*
Package coin defines the colored-token value types used by the direct
swap variant. A color identifies one class of fungible tokens native to
the settlement layer; an amount is always a whole number of tokens.
*/
package coin

import (
	"fmt"
	"regexp"

	"github.com/iov-one/tokenswap/errors"
)

// isColor ensures a token class identifier has a sane format. The value
// itself is opaque to the engine.
var isColor = regexp.MustCompile(`^[A-Za-z0-9_\-]{3,32}$`).MatchString

// Coin is an amount of tokens of a single color.
type Coin struct {
	Color  string
	Amount int64
}

// NewCoin creates a coin of given color and amount.
func NewCoin(color string, amount int64) Coin {
	return Coin{
		Color:  color,
		Amount: amount,
	}
}

// Validate returns an error if the coin has a malformed color or a
// negative amount.
func (c Coin) Validate() error {
	if !isColor(c.Color) {
		return errors.Wrapf(errors.ErrInput, "invalid color: %q", c.Color)
	}
	if c.Amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", c.Amount)
	}
	return nil
}

// IsPositive returns true if the amount is greater than zero.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// Add combines two coins of the same color, guarding against overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	if c.Color != o.Color {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "cannot add %s to %s", o.Color, c.Color)
	}
	sum := c.Amount + o.Amount
	if (o.Amount > 0 && sum < c.Amount) || (o.Amount < 0 && sum > c.Amount) {
		return Coin{}, errors.Wrap(errors.ErrOverflow, c.Color)
	}
	c.Amount = sum
	return c, nil
}

// Subtract removes the other coin amount, guarding against overflow. The
// result may be negative; callers decide if that is acceptable.
func (c Coin) Subtract(o Coin) (Coin, error) {
	o.Amount = -o.Amount
	return c.Add(o)
}

func (c Coin) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Color)
}

// Coins is a set of coins, at most one entry per color. It models the
// value attached to an invocation as well as a wallet content.
type Coins []Coin

// Validate ensures every coin is valid and no color repeats.
func (cs Coins) Validate() error {
	seen := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, ok := seen[c.Color]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "color %s", c.Color)
		}
		seen[c.Color] = struct{}{}
	}
	return nil
}

// AmountOf returns the amount of tokens of given color, zero when the
// color is not present.
func (cs Coins) AmountOf(color string) int64 {
	for _, c := range cs {
		if c.Color == color {
			return c.Amount
		}
	}
	return 0
}

// Add returns a new set with the given coin combined in.
func (cs Coins) Add(add Coin) (Coins, error) {
	if err := add.Validate(); err != nil {
		return nil, err
	}
	return cs.merge(add)
}

// Subtract returns a new set with the given coin removed. It fails when
// the set does not contain enough tokens of that color.
func (cs Coins) Subtract(sub Coin) (Coins, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if cs.AmountOf(sub.Color) < sub.Amount {
		return nil, errors.Wrapf(errors.ErrAmount, "insufficient funds: %s", sub.Color)
	}
	sub.Amount = -sub.Amount
	return cs.merge(sub)
}

// merge combines the coin into the set. The amount may be negative; the
// caller is responsible for sign and sufficiency checks.
func (cs Coins) merge(add Coin) (Coins, error) {
	res := make(Coins, 0, len(cs)+1)
	var combined bool
	for _, c := range cs {
		if c.Color == add.Color {
			sum, err := c.Add(add)
			if err != nil {
				return nil, err
			}
			c = sum
			combined = true
		}
		if c.Amount != 0 {
			res = append(res, c)
		}
	}
	if !combined && add.Amount != 0 {
		res = append(res, add)
	}
	return res, nil
}

// Equals returns true if both sets hold exactly the same value.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for _, c := range cs {
		if o.AmountOf(c.Color) != c.Amount {
			return false
		}
	}
	return true
}
