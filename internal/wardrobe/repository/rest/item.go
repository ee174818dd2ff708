package rest

import (
	"context"
	"fmt"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/internal/wardrobe/repository"
	"wardrobe-planner/internal/wardrobeapi"
	"wardrobe-planner/pkg/imaging"
	pkgLog "wardrobe-planner/pkg/log"
)

type implRepository struct {
	client *wardrobeapi.Client
	images imaging.Processor
	l      pkgLog.Logger
}

// New creates the REST-backed item repository. Photos are downscaled by
// images before upload.
func New(client *wardrobeapi.Client, images imaging.Processor, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		images: images,
		l:      l,
	}
}

func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (*model.WardrobeItem, error) {
	img, err := r.prepareImage(ctx, opt.Image)
	if err != nil {
		return nil, err
	}

	it := opt.Item
	req := wardrobeapi.ItemCreate{
		Name:     it.Name,
		Brand:    it.Brand,
		Category: it.Category,
		Size:     it.Size,
		Price:    it.Price,
		Material: it.Material,
		Season:   it.Season,
		Tags:     it.Tags,
		Color:    it.Color,
		Notes:    it.Notes,
		Favorite: it.Favorite,
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if it.ImageURL != "" {
		req.ImageURL = &it.ImageURL
	}

	item, err := r.client.CreateItem(ctx, req, img)
	if err != nil {
		r.l.Errorf(ctx, "wardrobe rest repository: failed to create item: %v", err)
		return nil, err
	}
	return item, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, id model.ID, opt repository.UpdateItemOptions) (*model.WardrobeItem, error) {
	if opt.Changes.Empty() && opt.Image == nil {
		return nil, repository.ErrEmptyUpdate
	}

	img, err := r.prepareImage(ctx, opt.Image)
	if err != nil {
		return nil, err
	}

	c := opt.Changes
	req := wardrobeapi.ItemUpdate{
		Name:     c.Name,
		Brand:    c.Brand,
		Category: c.Category,
		Size:     c.Size,
		Price:    c.Price,
		Material: c.Material,
		Season:   c.Season,
		ImageURL: c.ImageURL,
		Tags:     c.Tags,
		Color:    c.Color,
		Notes:    c.Notes,
		Favorite: c.Favorite,
	}

	item, err := r.client.UpdateItem(ctx, id, req, img)
	if err != nil {
		r.l.Errorf(ctx, "wardrobe rest repository: failed to update item %s: %v", id, err)
		return nil, err
	}
	return item, nil
}

func (r *implRepository) GetItem(ctx context.Context, id model.ID) (*model.WardrobeItem, error) {
	return r.client.GetItem(ctx, id)
}

func (r *implRepository) ListItems(ctx context.Context) ([]model.WardrobeItem, error) {
	items, err := r.client.ListItems(ctx)
	if err != nil {
		r.l.Errorf(ctx, "wardrobe rest repository: failed to list items: %v", err)
		return nil, err
	}
	return items, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id model.ID) error {
	if err := r.client.DeleteItem(ctx, id); err != nil {
		r.l.Errorf(ctx, "wardrobe rest repository: failed to delete item %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) LogWear(ctx context.Context, id model.ID, opt repository.LogWearOptions) (*model.WearEntry, error) {
	e, err := r.client.LogWear(ctx, wardrobeapi.WearCreate{
		ItemID:   id,
		DateWorn: model.NewTime(opt.WornAt.UTC()),
		Notes:    opt.Notes,
	})
	if err != nil {
		r.l.Errorf(ctx, "wardrobe rest repository: failed to log wear of item %s: %v", id, err)
		return nil, err
	}
	return e, nil
}

func (r *implRepository) prepareImage(ctx context.Context, opt *repository.ImageOptions) (*wardrobeapi.Image, error) {
	if opt == nil || len(opt.Data) == 0 {
		return nil, nil
	}
	res, err := r.images.Prepare(opt.Data, opt.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrBadImage, err)
	}
	if res.Resized {
		r.l.Debugf(ctx, "wardrobe rest repository: resized %s to %dx%d", opt.Filename, res.Width, res.Height)
	}
	return &wardrobeapi.Image{Filename: res.Filename, ContentType: res.MIME, Data: res.Data}, nil
}
