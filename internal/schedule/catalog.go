package schedule

// The staff roster, service menus and per-stylist slot granularity are fixed
// business data, not persisted state. Both stylists currently share the same
// menu and a 15-minute grid.

type Service struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int32  `json:"price"`    // whole pesos
	Duration        int32  `json:"duration"` // minutes
	IsStartingPrice bool   `json:"isStartingPrice"`
}

type StaffConfig struct {
	Name            string    `json:"name"`
	SlotGranularity int       `json:"slotGranularityMinutes"`
	Services        []Service `json:"services"`
}

func salonMenu(prefix string) []Service {
	return []Service{
		{ID: prefix + "1", Name: "Men's Hair Cut", Description: "Professional haircut for men", Price: 300, Duration: 30},
		{ID: prefix + "2", Name: "Women's Hair Cut", Description: "Professional haircut for women", Price: 300, Duration: 45},
		{ID: prefix + "3", Name: "Hair Color", Description: "Professional hair coloring service", Price: 1500, Duration: 120, IsStartingPrice: true},
		{ID: prefix + "4", Name: "Shampoo and Blow Dry", Description: "Shampoo and blow dry service", Price: 300, Duration: 30},
		{ID: prefix + "5", Name: "Curl Iron with Shampoo", Description: "Curl iron styling with shampoo", Price: 400, Duration: 45},
		{ID: prefix + "6", Name: "Hair Mask or Treatment", Description: "Deep conditioning hair mask or treatment", Price: 1500, Duration: 60, IsStartingPrice: true},
		{ID: prefix + "7", Name: "Charcoal Active Detox for Scalp", Description: "Charcoal detox treatment for scalp", Price: 1500, Duration: 60, IsStartingPrice: true},
		{ID: prefix + "8", Name: "Highlights & Tone Hair Mask with Treatment", Description: "Highlights and tone with hair mask treatment", Price: 3500, Duration: 180, IsStartingPrice: true},
		{ID: prefix + "9", Name: "Keratin and Brazilian with Hair Color and Hair Mask (After 2 days)", Description: "Keratin and Brazilian treatment with hair color and mask", Price: 3500, Duration: 180, IsStartingPrice: true},
		{ID: prefix + "10", Name: "Brazilian Blow Out Original with Hair Color and Hair Mask (After 2 days)", Description: "Brazilian blow out with hair color and mask", Price: 4000, Duration: 180, IsStartingPrice: true},
		{ID: prefix + "11", Name: "One Step Rebond with Hair Color and Hair Mask", Description: "One step rebond with hair color and hair mask", Price: 5000, Duration: 240, IsStartingPrice: true},
	}
}

var catalog = []StaffConfig{
	{Name: "Jake", SlotGranularity: 15, Services: salonMenu("j")},
	{Name: "Maricon", SlotGranularity: 15, Services: salonMenu("m")},
}

func Staff() []StaffConfig {
	return catalog
}

func StaffByName(name string) (*StaffConfig, bool) {
	for i := range catalog {
		if catalog[i].Name == name {
			return &catalog[i], true
		}
	}
	return nil, false
}

func (c *StaffConfig) ServiceByID(id string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].ID == id {
			return &c.Services[i], true
		}
	}
	return nil, false
}

func (c *StaffConfig) ServiceByName(name string) (*Service, bool) {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i], true
		}
	}
	return nil, false
}
