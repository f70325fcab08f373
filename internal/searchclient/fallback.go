package searchclient

import "time"

// FallbackListings returns the bundled sample dataset shown when the live
// endpoint is unreachable. It mirrors the seed data, so a freshly seeded
// backend and the fallback look the same. This is not a cache: callers can
// tell it apart from live data through StateFallback.
func FallbackListings() []Listing {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return []Listing{
		{
			ID:            "sample-1",
			Name:          strPtr("日当たり良好な水田"),
			Prefecture:    "長野県",
			City:          "松本市",
			Address:       "梓川梓1234-5",
			Area:          1200,
			Price:         int64Ptr(8000),
			Description:   strPtr("南向きで日当たり抜群の水田です。"),
			Latitude:      floatPtr(36.2),
			Longitude:     floatPtr(137.97),
			AvailableFrom: from,
			Images: []string{
				"/images/japanese-countryside-road-next-to-farmland.jpg",
				"/images/japanese-farm-parking-area-gravel-lot.jpg",
			},
			Facilities: Facilities{Shed: true, Water: true, Signal4G: true, Parking: true},
			Status:     "PUBLIC",
		},
		{
			ID:            "sample-2",
			Name:          strPtr("有機栽培向け畑地"),
			Prefecture:    "千葉県",
			City:          "南房総市",
			Address:       "白浜町5678",
			Area:          800,
			Price:         int64Ptr(5000),
			Description:   strPtr("温暖な気候で一年中栽培可能な畑地です。"),
			Latitude:      floatPtr(34.9),
			Longitude:     floatPtr(139.95),
			AvailableFrom: from,
			Images: []string{
				"/images/japanese-organic-vegetable-farm-field-with-ocean-v.jpg",
			},
			Facilities: Facilities{Toilet: true, Water: true, Signal5G: true, Signal4G: true},
			Status:     "PUBLIC",
		},
		{
			ID:            "sample-3",
			Name:          strPtr("ビニールハウス付き農地"),
			Prefecture:    "静岡県",
			City:          "浜松市",
			Address:       "引佐町910",
			Area:          2000,
			Price:         int64Ptr(15000),
			Description:   strPtr("イチゴ栽培の実績があり、設備もそのまま使用可能です。"),
			Latitude:      floatPtr(34.85),
			Longitude:     floatPtr(137.75),
			AvailableFrom: from,
			Images: []string{
				"/images/japanese-vinyl-greenhouse-structure-farmland.jpg",
			},
			Facilities: Facilities{Shed: true, Water: true, Electricity: true, Signal4G: true, Parking: true},
			Status:     "PUBLIC",
		},
		{
			ID:            "sample-4",
			Name:          strPtr("山間部の段々畑"),
			Prefecture:    "新潟県",
			City:          "十日町市",
			Address:       "松代1122",
			Area:          1500,
			Price:         int64Ptr(6000),
			Description:   strPtr("棚田の景観が美しい山間部の段々畑です。"),
			Latitude:      floatPtr(37.05),
			Longitude:     floatPtr(138.6),
			AvailableFrom: from,
			Images: []string{
				"/images/japanese-terraced-rice-fields-mountain-slope.jpg",
			},
			Facilities: Facilities{Water: true, Signal4G: true},
			Status:     "PUBLIC",
		},
		{
			ID:            "sample-5",
			Name:          strPtr("広々とした平地農地"),
			Prefecture:    "北海道",
			City:          "富良野市",
			Address:       "麓郷3344",
			Area:          5000,
			Description:   strPtr("大型機械の乗り入れが可能な広い平地です。賃料は応相談。"),
			Latitude:      floatPtr(43.3),
			Longitude:     floatPtr(142.45),
			AvailableFrom: from,
			Images: []string{
				"/images/hokkaido-wide-flat-farmland-summer.jpg",
			},
			Facilities: Facilities{Shed: true, Electricity: true, Parking: true},
			Status:     "PUBLIC",
		},
	}
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
func floatPtr(v float64) *float64 { return &v }
