package repository

import (
	"context"
	"time"

	"github.com/torioweb/cj-hair-lounge/backend/internal/domain"
)

func (r *Repository) GetAllGalleryImages() ([]*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, image_url, title, description, display_order, created_at
		FROM gallery
		ORDER BY display_order, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		img := &domain.GalleryImage{}
		dst := []any{&img.ID, &img.ImageURL, &img.Title, &img.Description, &img.DisplayOrder, &img.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return images, nil
}

func (r *Repository) CreateGalleryImage(img *domain.GalleryImage) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO gallery (image_url, title, description, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	args := []any{img.ImageURL, img.Title, img.Description, img.DisplayOrder}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGalleryImage(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM gallery WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
