package market

// Sector classifies a company into one of the simulated industries.
type Sector uint8

const (
	SectorUnknown Sector = iota
	SectorTechnology
	SectorEnergy
	SectorFinance
	SectorConsumer
	SectorManufacturing
)

func (s Sector) String() string {
	switch s {
	case SectorTechnology:
		return "Technology"
	case SectorEnergy:
		return "Energy"
	case SectorFinance:
		return "Finance"
	case SectorConsumer:
		return "Consumer"
	case SectorManufacturing:
		return "Manufacturing"
	default:
		return "Unknown"
	}
}

// ParseSector maps a sector name back to its value. Unrecognized names map
// to SectorUnknown.
func ParseSector(name string) Sector {
	switch name {
	case "Technology":
		return SectorTechnology
	case "Energy":
		return SectorEnergy
	case "Finance":
		return SectorFinance
	case "Consumer":
		return SectorConsumer
	case "Manufacturing":
		return SectorManufacturing
	default:
		return SectorUnknown
	}
}

// Sectors lists every tradable sector, excluding SectorUnknown.
func Sectors() []Sector {
	return []Sector{
		SectorTechnology,
		SectorEnergy,
		SectorFinance,
		SectorConsumer,
		SectorManufacturing,
	}
}

// MarshalText implements encoding.TextMarshaler so sectors serialize as
// names in JSON and TOML.
func (s Sector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Sector) UnmarshalText(text []byte) error {
	*s = ParseSector(string(text))
	return nil
}
