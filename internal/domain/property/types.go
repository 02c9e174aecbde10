package property

// StayType classifies the purpose of an accommodation listing under the NDIS.
type StayType string

const (
	StayTypeShortTerm  StayType = "STA"     // short-term accommodation
	StayTypeSupported  StayType = "SIL"     // supported independent living
	StayTypeRespite    StayType = "Respite" // respite care
	StayTypeSpecialist StayType = "SDA"     // specialist disability accommodation
	StayTypeMediumTerm StayType = "MTA"     // medium-term accommodation
)

func (s StayType) String() string {
	return string(s)
}

func (s StayType) IsValid() bool {
	switch s {
	case StayTypeShortTerm, StayTypeSupported, StayTypeRespite, StayTypeSpecialist, StayTypeMediumTerm:
		return true
	default:
		return false
	}
}
