package domain

import "time"

type GalleryImage struct {
	ID           int64     `json:"id"`
	ImageURL     string    `json:"imageUrl"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DisplayOrder int32     `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}
