// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol represents one stock of the catalog: an IDX-listed ticker with its
// company name, activity flag and display ordering. Default symbols form the
// comparison set used when a request does not select any tickers.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	IsDefault bool      `gorm:"not null;default:false"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
