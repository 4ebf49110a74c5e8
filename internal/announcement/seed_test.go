package announcement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeedObject(t *testing.T) {
	input := `{
		"announcements": [
			{
				"title": "Python Bootcamp",
				"platform": "Udemy",
				"type": "discount",
				"url": "https://example.com/python",
				"starts_at": "2026-03-01",
				"ends_at": "2026-03-14",
				"discount_pct": 85,
				"price_original": 119.99,
				"price_current": 17.99,
				"tags": ["Python", "Programming"]
			},
			{
				"title": "CS50",
				"platform": "edX",
				"url": "https://example.com/cs50"
			}
		],
		"facts": [
			{"text": "Spaced practice beats cramming.", "source": "Learning research"},
			{"text": "Retired fact.", "active": false}
		]
	}`

	data, err := ParseSeed(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, data.Announcements, 2)
	require.Len(t, data.Facts, 2)

	discount := data.Announcements[0]
	assert.Equal(t, TypeDiscount, discount.Type)
	assert.Equal(t, "Udemy", discount.Platform)
	require.NotNil(t, discount.DiscountPct)
	assert.Equal(t, 85, *discount.DiscountPct)
	require.NotNil(t, discount.StartsAt)
	assert.Equal(t, "2026-03-01", discount.StartsAt.Format("2006-01-02"))
	assert.JSONEq(t, `["Python","Programming"]`, string(discount.Tags))

	enrollment := data.Announcements[1]
	assert.Equal(t, TypeEnrollment, enrollment.Type, "missing type defaults to enrollment")
	assert.Nil(t, enrollment.StartsAt)
	assert.JSONEq(t, `[]`, string(enrollment.Tags), "missing tags become an empty list")

	assert.True(t, data.Facts[0].Active, "facts default to active")
	assert.False(t, data.Facts[1].Active)
}

func TestParseSeedBareArray(t *testing.T) {
	input := `[{"title": "Go Course", "platform": "Coursera", "url": "https://example.com/go"}]`

	data, err := ParseSeed(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, data.Announcements, 1)
	assert.Equal(t, "Go Course", data.Announcements[0].Title)
	assert.Empty(t, data.Facts)
}

func TestParseSeedResultsWrapper(t *testing.T) {
	input := `{"results": [{"title": "SQL Basics", "platform": "DataCamp"}]}`

	data, err := ParseSeed(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, data.Announcements, 1)
	assert.Equal(t, "SQL Basics", data.Announcements[0].Title)
}

func TestParseSeedRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"MissingTitle", `[{"platform": "Udemy"}]`},
		{"MissingPlatform", `[{"title": "No Platform"}]`},
		{"UnknownType", `[{"title": "X", "platform": "Y", "type": "flash_sale"}]`},
		{"DiscountOutOfRange", `[{"title": "X", "platform": "Y", "discount_pct": 120}]`},
		{"BlankFactText", `{"facts": [{"text": "  "}]}`},
		{"Garbage", `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSeed(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}
