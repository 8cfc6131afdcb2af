package resource

type Type string

const (
	TypeRoom    Type = "room"
	TypeVehicle Type = "vehicle"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeRoom, TypeVehicle:
		return true
	default:
		return false
	}
}
