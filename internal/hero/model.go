package hero

import "time"

// Section is one slide of the storefront hero carousel.
type Section struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Subtitle        *string   `json:"subtitle,omitempty"`
	BackgroundImage string    `json:"backgroundImage"`
	CTAText         *string   `json:"ctaText,omitempty"`
	CTALink         *string   `json:"ctaLink,omitempty"`
	OrderIndex      int       `json:"orderIndex"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type NewSectionInput struct {
	Title           string  `json:"title" validate:"required,min=2"`
	Subtitle        *string `json:"subtitle,omitempty"`
	BackgroundImage string  `json:"backgroundImage" validate:"required,url"`
	CTAText         *string `json:"ctaText,omitempty"`
	CTALink         *string `json:"ctaLink,omitempty"`
	OrderIndex      int     `json:"orderIndex"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

type UpdateSectionInput struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=2"`
	Subtitle        *string `json:"subtitle,omitempty"`
	BackgroundImage *string `json:"backgroundImage,omitempty" validate:"omitempty,url"`
	CTAText         *string `json:"ctaText,omitempty"`
	CTALink         *string `json:"ctaLink,omitempty"`
	OrderIndex      *int    `json:"orderIndex,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}
