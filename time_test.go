package tokenswap

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/tokenswap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
		want    UnixTime
	}{
		"number": {
			raw:  "1234567",
			want: 1234567,
		},
		"zero": {
			raw:  "0",
			want: 0,
		},
		"negative number": {
			raw:     "-1",
			wantErr: errors.ErrInput,
		},
		"string time": {
			raw:  `"2019-04-01T10:00:00Z"`,
			want: 1554112800,
		},
		"garbage": {
			raw:     `"not a time"`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := AsUnixTime(time.Unix(1000, 0))
	assert.Equal(t, UnixTime(1060), now.Add(time.Minute))
	assert.Equal(t, UnixTime(940), now.Add(-time.Minute))
	// precision below one second is dropped
	assert.Equal(t, UnixTime(1000), now.Add(999*time.Millisecond))
}

func TestUnixDurationUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr *errors.Error
		want    UnixDuration
	}{
		"number of seconds": {
			raw:  "600",
			want: 600,
		},
		"duration string": {
			raw:  `"11m"`,
			want: 660,
		},
		"garbage string": {
			raw:     `"eleven minutes"`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixDuration
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnixDurationValidate(t *testing.T) {
	assert.NoError(t, UnixDuration(0).Validate())
	assert.NoError(t, UnixDuration(3600).Validate())
	assert.True(t, errors.ErrInput.Is(UnixDuration(-1).Validate()))
}
