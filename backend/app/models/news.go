package models

import "time"

type NewsStatus string

const (
	NewsPending  NewsStatus = "PENDING"
	NewsApproved NewsStatus = "APPROVED"
	NewsRejected NewsStatus = "REJECTED"
)

// News is an article. Deleted is a one-way soft delete flag set by the
// expiry sweep; a deleted row never shows up in listings.
type News struct {
	ID            uint       `gorm:"primaryKey"`
	Title         string     `gorm:"size:200;not null"`
	TitleAr       string     `gorm:"size:200;not null"`
	Description   string     `gorm:"type:text;not null"`
	DescriptionAr string     `gorm:"type:text;not null"`
	PublishDate   time.Time  `gorm:"type:date;not null;index"`
	ImageURL      string     `gorm:"size:512"`
	Status        NewsStatus `gorm:"size:16;not null;default:PENDING;index"`
	Deleted       bool       `gorm:"not null;default:false;index"`
	AuthorID      uint       `gorm:"index;not null"`
	Author        User       `gorm:"foreignKey:AuthorID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DateOnly truncates t to its calendar date (in t's location) and pins it to
// UTC so stored publish dates compare the same way on every driver.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
