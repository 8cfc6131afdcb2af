package memstore

import (
	"resource-booker/internal/domain/resource"
	"resource-booker/internal/infra"
	"resource-booker/internal/pkg/config"
)

// ResourceCatalog is the immutable set of bookable resources, seeded once at
// process start. Lookups need no locking because nothing mutates the catalog
// after construction.
type ResourceCatalog struct {
	byID  map[string]*resource.Resource
	order []string
}

func NewResourceCatalog(seeds []config.ResourceSeed) (*ResourceCatalog, error) {
	c := &ResourceCatalog{
		byID:  make(map[string]*resource.Resource, len(seeds)),
		order: make([]string, 0, len(seeds)),
	}

	for _, seed := range seeds {
		res, err := resource.NewResource(
			seed.ID,
			seed.Name,
			resource.Type(seed.Type),
			seed.Description,
			seed.MaxBookingHours,
		)
		if err != nil {
			return nil, err
		}
		if _, exists := c.byID[res.ID()]; exists {
			return nil, infra.NewStoreErr(infra.KindDuplicateKey, "duplicate resource id "+res.ID())
		}
		c.byID[res.ID()] = res
		c.order = append(c.order, res.ID())
	}

	return c, nil
}

func (c *ResourceCatalog) FindByID(id string) (*resource.Resource, error) {
	res, ok := c.byID[id]
	if !ok {
		return nil, infra.NewStoreErr(infra.KindNotFound, "resource "+id+" not found")
	}
	return res, nil
}

func (c *ResourceCatalog) List() []*resource.Resource {
	out := make([]*resource.Resource, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
