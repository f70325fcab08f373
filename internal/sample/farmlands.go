// Package sample bundles the demo dataset used to bootstrap an empty
// database. It mirrors the fallback listings shipped with the search client.
package sample

import (
	"time"

	"agrimatch/internal/model"
)

const demoProviderEmail = "demo-provider@agrimatch.example"

// Bcrypt hash of a throwaway demo password; the demo account is not meant to
// be logged into.
const demoProviderHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Data provides the bundled bootstrap dataset.
type Data struct{}

// New returns the bundled dataset.
func New() Data {
	return Data{}
}

// Provider returns the demo landowner that owns the sample listings.
func (Data) Provider() model.User {
	name := "デモ農地提供者"
	return model.User{
		Email:        demoProviderEmail,
		PasswordHash: demoProviderHash,
		Name:         &name,
		Role:         model.RoleProvider,
	}
}

// Farmlands returns the sample listings. ProviderID is filled in by the
// caller once the demo provider exists.
func (Data) Farmlands() []model.Farmland {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return []model.Farmland{
		{
			Name:          strPtr("日当たり良好な水田"),
			Prefecture:    "長野県",
			City:          "松本市",
			Address:       "梓川梓1234-5",
			Area:          1200,
			Price:         int64Ptr(8000),
			AvailableFrom: from,
			Description:   strPtr("南向きで日当たり抜群の水田です。用水路からの引水が可能で、米作りに最適な環境が整っています。"),
			Latitude:      floatPtr(36.2),
			Longitude:     floatPtr(137.97),
			Images: []string{
				"/images/japanese-countryside-road-next-to-farmland.jpg",
				"/images/japanese-farm-parking-area-gravel-lot.jpg",
			},
			Facilities: model.Facilities{Shed: true, Water: true, Signal4G: true, Parking: true},
			Status:     model.StatusPublic,
		},
		{
			Name:          strPtr("有機栽培向け畑地"),
			Prefecture:    "千葉県",
			City:          "南房総市",
			Address:       "白浜町5678",
			Area:          800,
			Price:         int64Ptr(5000),
			AvailableFrom: from,
			Description:   strPtr("温暖な気候で一年中栽培可能な畑地です。"),
			Latitude:      floatPtr(34.9),
			Longitude:     floatPtr(139.95),
			Images: []string{
				"/images/japanese-organic-vegetable-farm-field-with-ocean-v.jpg",
				"/images/japanese-farm-toilet-facility-small-building.jpg",
			},
			Facilities: model.Facilities{Toilet: true, Water: true, Signal5G: true, Signal4G: true},
			Status:     model.StatusPublic,
		},
		{
			Name:          strPtr("ビニールハウス付き農地"),
			Prefecture:    "静岡県",
			City:          "浜松市",
			Address:       "引佐町910",
			Area:          2000,
			Price:         int64Ptr(15000),
			AvailableFrom: from,
			Description:   strPtr("イチゴ栽培の実績があり、設備もそのまま使用可能です。"),
			Latitude:      floatPtr(34.85),
			Longitude:     floatPtr(137.75),
			Images: []string{
				"/images/japanese-vinyl-greenhouse-structure-farmland.jpg",
				"/images/inside-japanese-greenhouse-strawberry-cultivation.jpg",
			},
			Facilities: model.Facilities{Shed: true, Water: true, Electricity: true, Signal4G: true, Parking: true},
			Status:     model.StatusPublic,
		},
		{
			Name:          strPtr("山間部の段々畑"),
			Prefecture:    "新潟県",
			City:          "十日町市",
			Address:       "松代1122",
			Area:          1500,
			Price:         int64Ptr(6000),
			AvailableFrom: from,
			Description:   strPtr("棚田の景観が美しい山間部の段々畑です。水はけが良く、野菜栽培に向いています。"),
			Latitude:      floatPtr(37.05),
			Longitude:     floatPtr(138.6),
			Images: []string{
				"/images/japanese-terraced-rice-fields-mountain-slope.jpg",
			},
			Facilities: model.Facilities{Water: true, Signal4G: true},
			Status:     model.StatusPublic,
		},
		{
			Name:          strPtr("広々とした平地農地"),
			Prefecture:    "北海道",
			City:          "富良野市",
			Address:       "麓郷3344",
			Area:          5000,
			AvailableFrom: from,
			Description:   strPtr("大型機械の乗り入れが可能な広い平地です。賃料は応相談。"),
			Latitude:      floatPtr(43.3),
			Longitude:     floatPtr(142.45),
			Images: []string{
				"/images/hokkaido-wide-flat-farmland-summer.jpg",
			},
			Facilities: model.Facilities{Shed: true, Electricity: true, Parking: true},
			Status:     model.StatusPublic,
		},
	}
}

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }
func floatPtr(v float64) *float64 { return &v }
