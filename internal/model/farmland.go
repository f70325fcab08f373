package model

import "time"

// FarmlandStatus controls listing visibility. Only PUBLIC rows are returned
// by the general listing query.
type FarmlandStatus string

const (
	// StatusPublic makes a farmland visible to everyone.
	StatusPublic FarmlandStatus = "PUBLIC"
	// StatusPrivate hides a farmland from general retrieval.
	StatusPrivate FarmlandStatus = "PRIVATE"
)

// Facilities is the fixed set of on-site infrastructure flags. Stored as
// embedded boolean columns rather than a dynamic JSON bag so facility filters
// compile down to plain column equality.
type Facilities struct {
	Shed        bool `json:"shed" gorm:"column:shed"`
	Toilet      bool `json:"toilet" gorm:"column:toilet"`
	Water       bool `json:"water" gorm:"column:water"`
	Electricity bool `json:"electricity" gorm:"column:electricity"`
	Signal5G    bool `json:"signal5g" gorm:"column:signal_5g"`
	Signal4G    bool `json:"signal4g" gorm:"column:signal_4g"`
	Parking     bool `json:"parking" gorm:"column:parking"`
}

// facilityColumns maps request facility keys to their database columns.
var facilityColumns = map[string]string{
	"shed":        "facility_shed",
	"toilet":      "facility_toilet",
	"water":       "facility_water",
	"electricity": "facility_electricity",
	"signal5g":    "facility_signal_5g",
	"signal4g":    "facility_signal_4g",
	"parking":     "facility_parking",
}

// FacilityColumn resolves a facility key to its column name. Unknown keys
// return false and must be rejected at the parsing boundary.
func FacilityColumn(key string) (string, bool) {
	col, ok := facilityColumns[key]
	return col, ok
}

// FacilityKeys returns all known facility keys.
func FacilityKeys() []string {
	keys := make([]string, 0, len(facilityColumns))
	for k := range facilityColumns {
		keys = append(keys, k)
	}
	return keys
}

// Farmland represents a land parcel listing owned by a provider.
type Farmland struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          *string        `json:"name" gorm:"size:255"`
	Prefecture    string         `json:"prefecture" gorm:"size:64;not null;index"`
	City          string         `json:"city" gorm:"size:64;not null;index"`
	Address       string         `json:"address" gorm:"size:255;not null"`
	Area          float64        `json:"area" gorm:"not null"` // square meters, > 0
	Price         *int64         `json:"price"`                // monthly rent in yen, nil = negotiable
	AvailableFrom time.Time      `json:"availableFrom" gorm:"not null"`
	AvailableTo   *time.Time     `json:"availableTo"`
	Description   *string        `json:"description" gorm:"type:text"`
	Latitude      *float64       `json:"latitude"`
	Longitude     *float64       `json:"longitude"`
	Images        []string       `json:"images" gorm:"serializer:json;type:text"`
	Facilities    Facilities     `json:"facilities" gorm:"embedded;embeddedPrefix:facility_"`
	Status        FarmlandStatus `json:"status" gorm:"size:16;not null;default:'PUBLIC';index"`
	ProviderID    uint           `json:"providerId" gorm:"not null;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Relations
	Provider User `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}
