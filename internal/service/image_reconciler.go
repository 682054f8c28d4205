package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"marketplace/internal/model"
	"marketplace/internal/repository"
)

// ImageReconciler syncs an item's persisted image rows to a desired list of
// URLs with minimal writes.
type ImageReconciler interface {
	// Reconcile makes the item's image set equal the desired list. A nil list
	// means "no change requested", not "clear all images". Reconciling twice
	// with the same list performs no writes the second time.
	Reconcile(ctx context.Context, itemID uuid.UUID, desired []string) error
	// Clear deletes every image of the item.
	Clear(ctx context.Context, itemID uuid.UUID) error
	// ListURLs returns the item's image URLs in creation order.
	ListURLs(ctx context.Context, itemID uuid.UUID) ([]string, error)
}

type imageReconciler struct {
	imageRepo repository.ItemImageRepository
}

// NewImageReconciler creates an image reconciler.
func NewImageReconciler(imageRepo repository.ItemImageRepository) ImageReconciler {
	return &imageReconciler{imageRepo: imageRepo}
}

// Reconcile walks the desired URLs against the loaded existing rows: a URL
// that matches an existing row keeps that row (and removes it from the working
// set), a URL with no match creates a new row, and whatever remains in the
// working set afterwards is deleted. Two images with the same URL string are
// the same image. The linear scan is fine for the bounded per-item image
// counts this service sees.
func (r *imageReconciler) Reconcile(ctx context.Context, itemID uuid.UUID, desired []string) error {
	if desired == nil {
		return nil
	}

	existing, err := r.imageRepo.ListByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("list item images: %w", err)
	}

	for _, url := range desired {
		idx := -1
		for i, img := range existing {
			if img.URL == url {
				idx = i
				break
			}
		}
		if idx >= 0 {
			existing = append(existing[:idx], existing[idx+1:]...)
			continue
		}
		image := &model.ItemImage{ID: uuid.New(), ItemID: itemID, URL: url}
		if err := r.imageRepo.Create(ctx, image); err != nil {
			return fmt.Errorf("create item image: %w", err)
		}
	}

	for i := range existing {
		if err := r.imageRepo.Delete(ctx, &existing[i]); err != nil {
			return fmt.Errorf("delete item image: %w", err)
		}
	}
	return nil
}

func (r *imageReconciler) Clear(ctx context.Context, itemID uuid.UUID) error {
	images, err := r.imageRepo.ListByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("list item images: %w", err)
	}
	for i := range images {
		if err := r.imageRepo.Delete(ctx, &images[i]); err != nil {
			return fmt.Errorf("delete item image: %w", err)
		}
	}
	return nil
}

func (r *imageReconciler) ListURLs(ctx context.Context, itemID uuid.UUID) ([]string, error) {
	images, err := r.imageRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list item images: %w", err)
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls, nil
}
