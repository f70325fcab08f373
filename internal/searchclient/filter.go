package searchclient

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Documented filter defaults. Fields at their default are left out of the
// serialized query string so shared URLs stay minimal.
const (
	DefaultMinArea  float64 = 0
	DefaultMaxArea  float64 = 5000
	DefaultMinPrice int64   = 0
	DefaultMaxPrice int64   = 100000
)

// FilterState is the canonical current search state. It round-trips through
// a URL query string, so a shared URL reproduces the same result set.
type FilterState struct {
	Prefecture string
	City       string
	Keyword    string
	MinArea    float64
	MaxArea    float64
	MinPrice   int64
	MaxPrice   int64
	Facilities []string
}

// DefaultFilterState returns the initial state of a fresh search page.
func DefaultFilterState() FilterState {
	return FilterState{
		MinArea:  DefaultMinArea,
		MaxArea:  DefaultMaxArea,
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
	}
}

// Values serializes the state as endpoint query parameters, emitting only
// fields that differ from their defaults.
func (f FilterState) Values() url.Values {
	v := url.Values{}
	if f.Prefecture != "" {
		v.Set("prefecture", f.Prefecture)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.Keyword != "" {
		v.Set("keyword", f.Keyword)
	}
	if f.MinArea != DefaultMinArea {
		v.Set("minArea", strconv.FormatFloat(f.MinArea, 'f', -1, 64))
	}
	if f.MaxArea != DefaultMaxArea {
		v.Set("maxArea", strconv.FormatFloat(f.MaxArea, 'f', -1, 64))
	}
	if f.MinPrice != DefaultMinPrice {
		v.Set("minPrice", strconv.FormatInt(f.MinPrice, 10))
	}
	if f.MaxPrice != DefaultMaxPrice {
		v.Set("maxPrice", strconv.FormatInt(f.MaxPrice, 10))
	}
	if len(f.Facilities) > 0 {
		v.Set("facilities", strings.Join(f.Facilities, ","))
	}
	return v
}

// Encode returns the state as a raw query string suitable for the address bar.
func (f FilterState) Encode() string {
	return f.Values().Encode()
}

// ParseFilterState restores a state from a query string. Absent fields take
// their defaults; malformed numerics are an error.
func ParseFilterState(rawQuery string) (FilterState, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return FilterState{}, fmt.Errorf("parse query: %w", err)
	}

	f := DefaultFilterState()
	f.Prefecture = values.Get("prefecture")
	f.City = values.Get("city")
	f.Keyword = values.Get("keyword")

	if raw := values.Get("minArea"); raw != "" {
		if f.MinArea, err = strconv.ParseFloat(raw, 64); err != nil {
			return FilterState{}, fmt.Errorf("parse minArea: %w", err)
		}
	}
	if raw := values.Get("maxArea"); raw != "" {
		if f.MaxArea, err = strconv.ParseFloat(raw, 64); err != nil {
			return FilterState{}, fmt.Errorf("parse maxArea: %w", err)
		}
	}
	if raw := values.Get("minPrice"); raw != "" {
		if f.MinPrice, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return FilterState{}, fmt.Errorf("parse minPrice: %w", err)
		}
	}
	if raw := values.Get("maxPrice"); raw != "" {
		if f.MaxPrice, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return FilterState{}, fmt.Errorf("parse maxPrice: %w", err)
		}
	}
	if raw := values.Get("facilities"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			key = strings.TrimSpace(key)
			if key != "" {
				f.Facilities = append(f.Facilities, key)
			}
		}
	}
	return f, nil
}
