// Package entity defines the domain models for the catalog feature.
package entity

// Subscription tiers. A higher tier unlocks every item of the tiers below it.
const (
	TierFree = "free"
	TierPro  = "pro"
	TierMax  = "max"
)

// Tiers lists the tiers in ascending order.
var Tiers = []string{TierFree, TierPro, TierMax}

// Strategy is a selectable analysis strategy. Display data only.
type Strategy struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Name    string `gorm:"size:64;uniqueIndex;not null" json:"name" yaml:"name"`
	Code    string `gorm:"size:64;not null" json:"code" yaml:"code"` // analysis API strategy code
	Credits int    `gorm:"not null" json:"credits" yaml:"credits"`
	WinRate int    `gorm:"not null" json:"win_rate" yaml:"win_rate"` // advertised, percent
	Risk    string `gorm:"size:16;not null" json:"risk" yaml:"risk"`
	Tier    string `gorm:"size:8;index;not null" json:"tier" yaml:"tier"`
	SortKey int    `gorm:"not null" json:"sort_key" yaml:"-"`
}

// TableName はGORMで使用するテーブル名を返します。
func (Strategy) TableName() string { return "catalog_strategies" }

// AIModel is an AI model offered on the dashboard. Display data only; no
// inference is performed by this service.
type AIModel struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	Name        string `gorm:"size:64;uniqueIndex;not null" json:"name" yaml:"name"`
	Description string `gorm:"size:255" json:"description" yaml:"description"`
	Credits     string `gorm:"size:16;not null" json:"credits" yaml:"credits"` // a number or "Variable"
	Accuracy    int    `gorm:"not null" json:"accuracy" yaml:"accuracy"`       // advertised, percent
	Tier        string `gorm:"size:8;index;not null" json:"tier" yaml:"tier"`
	SortKey     int    `gorm:"not null" json:"sort_key" yaml:"-"`
}

// TableName はGORMで使用するテーブル名を返します。
func (AIModel) TableName() string { return "catalog_ai_models" }
