package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is a []string stored as a JSONB column. It implements
// sql.Scanner and driver.Valuer so repositories can scan list columns
// (project tech stacks, experience responsibilities, etc.) directly.
type StringList []string

// Scan implements sql.Scanner. A NULL column yields an empty list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source type for StringList")
	}
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}

// Service is one offering shown on the landing page.
type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index"`
	IsActive    bool   `json:"is_active"`
}

// Education is a single education history entry.
type Education struct {
	ID          int64     `json:"id"`
	Degree      string    `json:"degree"`
	Institution string    `json:"institution"`
	Years       string    `json:"years"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// TechStack is a single technology badge.
type TechStack struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Category   string `json:"category,omitempty"`
	OrderIndex int    `json:"order_index"`
	IsActive   bool   `json:"is_active"`
}

// Project is a portfolio project card.
type Project struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   StringList `json:"tech_stack"`
	LiveLink    string     `json:"live_link,omitempty"`
	GithubLink  string     `json:"github_link,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsFeatured  bool       `json:"is_featured"`
	OrderIndex  int        `json:"order_index"`
	IsActive    bool       `json:"is_active"`
}

// Testimonial is a client quote.
type Testimonial struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Company    string `json:"company,omitempty"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	OrderIndex int    `json:"order_index"`
	IsActive   bool   `json:"is_active"`
}

// Article is a blog post. Slug is unique and used for public lookup.
type Article struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	ReadTime      string    `json:"read_time,omitempty"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	IsPublished   bool      `json:"is_published"`
	IsFeatured    bool      `json:"is_featured"`
	OrderIndex    int       `json:"order_index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Experience is a single work history entry.
type Experience struct {
	ID               int64      `json:"id"`
	Company          string     `json:"company"`
	Position         string     `json:"position"`
	Location         string     `json:"location,omitempty"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date,omitempty"`
	IsCurrent        bool       `json:"is_current"`
	Description      string     `json:"description,omitempty"`
	Responsibilities StringList `json:"responsibilities"`
	Technologies     StringList `json:"technologies"`
	Achievements     StringList `json:"achievements"`
	CompanyLogo      string     `json:"company_logo,omitempty"`
	CompanyWebsite   string     `json:"company_website,omitempty"`
	OrderIndex       int        `json:"order_index"`
	IsActive         bool       `json:"is_active"`
}
