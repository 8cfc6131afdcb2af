package resource

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyResourceID     = errors.New("resource id cannot be empty")
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidDurationCap  = errors.New("vehicle duration cap must be positive")
	ErrDurationExceedsCap  = errors.New("booking duration exceeds resource cap")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a bookable room or vehicle. Vehicles carry an inclusive upper
// bound on a single booking's duration; rooms have none.
type Resource struct {
	id              string
	name            string
	resourceType    Type
	description     string
	maxBookingHours int
}

func NewResource(id, name string, resourceType Type, description string, maxBookingHours int) (*Resource, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyResourceID
	}
	if err := validateResourceName(name); err != nil {
		return nil, err
	}
	if !resourceType.IsValid() {
		return nil, ErrInvalidResourceType
	}
	if resourceType == TypeVehicle && maxBookingHours <= 0 {
		return nil, ErrInvalidDurationCap
	}
	if resourceType == TypeRoom {
		maxBookingHours = 0
	}

	return &Resource{
		id:              strings.TrimSpace(id),
		name:            strings.TrimSpace(name),
		resourceType:    resourceType,
		description:     strings.TrimSpace(description),
		maxBookingHours: maxBookingHours,
	}, nil
}

// ValidateBookingDuration enforces the per-resource duration cap. The cap is
// inclusive: a vehicle with an 8 hour cap accepts exactly 8 hours.
func (r *Resource) ValidateBookingDuration(d time.Duration) error {
	if r.maxBookingHours == 0 {
		return nil
	}
	if d.Hours() > float64(r.maxBookingHours) {
		return ErrDurationExceedsCap
	}
	return nil
}

func (r *Resource) IsVehicle() bool {
	return r.resourceType == TypeVehicle
}

func validateResourceName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() string           { return r.id }
func (r *Resource) Name() string         { return r.name }
func (r *Resource) Type() Type           { return r.resourceType }
func (r *Resource) Description() string  { return r.description }
func (r *Resource) MaxBookingHours() int { return r.maxBookingHours }
