package queries

import (
	"context"

	"resource-booker/internal/domain/resource"
	"resource-booker/internal/pkg/errs"
)

type ResourceQueries interface {
	List(ctx context.Context) ([]*ResourceView, error)
	GetByID(ctx context.Context, id string) (*ResourceView, error)
}

type resourceQueriesImpl struct {
	resources ResourceReadStore
}

func NewResourceQueries(resources ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{resources: resources}
}

func (q *resourceQueriesImpl) List(_ context.Context) ([]*ResourceView, error) {
	catalog := q.resources.List()
	views := make([]*ResourceView, len(catalog))
	for i, res := range catalog {
		views[i] = toResourceView(res)
	}
	return views, nil
}

func (q *resourceQueriesImpl) GetByID(_ context.Context, id string) (*ResourceView, error) {
	res, err := q.resources.FindByID(id)
	if err != nil {
		return nil, errs.ErrResourceNotFound
	}
	return toResourceView(res), nil
}

func toResourceView(res *resource.Resource) *ResourceView {
	view := &ResourceView{
		ID:   res.ID(),
		Name: res.Name(),
		Type: res.Type().String(),
	}
	if d := res.Description(); d != "" {
		view.Description = &d
	}
	if res.IsVehicle() {
		hours := res.MaxBookingHours()
		view.MaxBookingHours = &hours
	}
	return view
}
