package handler

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "agrimatch/internal/errors"
	"agrimatch/internal/model"
)

func TestParseSearchQuery_Defaults(t *testing.T) {
	filter, page, limit, err := parseSearchQuery(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Empty(t, filter.Prefecture)
	assert.Nil(t, filter.MinArea)
	assert.Nil(t, filter.MaxArea)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Empty(t, filter.Facilities)
}

func TestParseSearchQuery_AllParameters(t *testing.T) {
	values := url.Values{}
	values.Set("prefecture", "長野県")
	values.Set("city", "松本市")
	values.Set("keyword", "ハウス")
	values.Set("minArea", "500.5")
	values.Set("maxArea", "2000")
	values.Set("minPrice", "5000")
	values.Set("maxPrice", "20000")
	values.Set("facilities", "shed, water,,toilet")
	values.Set("page", "3")
	values.Set("limit", "25")

	filter, page, limit, err := parseSearchQuery(values)

	require.NoError(t, err)
	assert.Equal(t, "長野県", filter.Prefecture)
	assert.Equal(t, "松本市", filter.City)
	assert.Equal(t, "ハウス", filter.Keyword)
	require.NotNil(t, filter.MinArea)
	assert.Equal(t, 500.5, *filter.MinArea)
	require.NotNil(t, filter.MaxArea)
	assert.Equal(t, float64(2000), *filter.MaxArea)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, int64(5000), *filter.MinPrice)
	require.NotNil(t, filter.MaxPrice)
	assert.Equal(t, int64(20000), *filter.MaxPrice)
	assert.Equal(t, []string{"shed", "water", "toilet"}, filter.Facilities)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
}

func TestParseSearchQuery_MalformedNumericsRejected(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric minArea", key: "minArea", value: "abc"},
		{name: "non-numeric maxArea", key: "maxArea", value: "big"},
		{name: "fractional minPrice", key: "minPrice", value: "10.5"},
		{name: "non-numeric maxPrice", key: "maxPrice", value: "1e"},
		{name: "non-numeric page", key: "page", value: "one"},
		{name: "non-numeric limit", key: "limit", value: "ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set(tt.key, tt.value)

			_, _, _, err := parseSearchQuery(values)
			assert.ErrorIs(t, err, apperrors.ErrInvalidFilter)
		})
	}
}

func TestToListing(t *testing.T) {
	name := "棚田"
	providerName := "Demo Provider"
	price := int64(8000)
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	listing := toListing(model.Farmland{
		ID:            42,
		Name:          &name,
		Prefecture:    "長野県",
		City:          "松本市",
		Address:       "1-1",
		Area:          1200,
		Price:         &price,
		AvailableFrom: from,
		Facilities:    model.Facilities{Shed: true, Water: true},
		Status:        model.StatusPublic,
		ProviderID:    7,
		Provider: model.User{
			ID:    7,
			Name:  &providerName,
			Email: "provider@example.com",
		},
	})

	assert.Equal(t, "42", listing.ID)
	assert.Equal(t, &name, listing.Name)
	assert.Equal(t, "PUBLIC", listing.Status)
	assert.True(t, listing.Facilities.Shed)
	assert.False(t, listing.Facilities.Toilet)
	assert.Equal(t, "7", listing.Provider.ID)
	assert.Equal(t, "provider@example.com", listing.Provider.Email)
	assert.NotNil(t, listing.Images, "images serializes as [] rather than null")
}

func TestParseDate(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		parsed, err := parseDate("2025-04-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("RFC3339", func(t *testing.T) {
		parsed, err := parseDate("2025-04-01T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseDate("04/01/2025")
		assert.Error(t, err)
	})
}
