package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"09:30": 9*60 + 30,
			"14:00": 14 * 60,
			"23:59": 23*60 + 59,
		}
		for input, want := range cases {
			got, err := ParseMinutes(input)
			require.NoError(t, err, input)
			assert.Equal(t, want, got, input)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, input := range []string{"", "14", "24:00", "12:60", "ab:cd", "-1:30"} {
			_, err := ParseMinutes(input)
			assert.Error(t, err, input)
		}
	})
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "09:05", FormatMinutes(9*60+5))
	assert.Equal(t, "23:59", FormatMinutes(23*60+59))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("18:00"))
	assert.False(t, IsValid("25:00"))
	assert.False(t, IsValid("noon"))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-12", FormatDate(d))
	assert.Equal(t, "UTC", d.Location().String())

	_, err = ParseDate("12/09/2026")
	assert.Error(t, err)
}
