package entities

// Service is a single bookable salon service. Price and duration are
// human-readable strings, not numbers: the domain tolerates ranges like
// "$50-$70" and open-ended values like "$100+".
type Service struct {
	Service     string `json:"service"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ServiceCategory groups services under a category name
type ServiceCategory struct {
	Category string    `json:"category"`
	Services []Service `json:"services"`
}

// DefaultCatalogue returns the static services catalogue. It is defined at
// process start and never mutated.
func DefaultCatalogue() []ServiceCategory {
	return []ServiceCategory{
		{
			Category: "Haircuts",
			Services: []Service{
				{Service: "Men's Haircut", Price: "$30", Duration: "30 min", Description: "Consultation, wash, cut, and style"},
				{Service: "Women's Haircut", Price: "$50-$70", Duration: "60 min", Description: "Consultation, wash, cut, and style"},
				{Service: "Children's Haircut", Price: "$25", Duration: "30 min", Description: "Ages 12 and under"},
			},
		},
		{
			Category: "Color Services",
			Services: []Service{
				{Service: "Root Touch-up", Price: "$75", Duration: "90 min", Description: "Single color application at the roots"},
				{Service: "Full Color", Price: "$100+", Duration: "2-3 hrs", Description: "All-over color application"},
				{Service: "Highlights/Lowlights", Price: "$120+", Duration: "2-3 hrs", Description: "Partial or full foil options"},
				{Service: "Balayage", Price: "$150+", Duration: "3+ hrs", Description: "Hand-painted highlights for natural look"},
			},
		},
		{
			Category: "Treatments",
			Services: []Service{
				{Service: "Deep Conditioning", Price: "$25", Duration: "30 min", Description: "Intensive treatment for damaged hair"},
				{Service: "Keratin Treatment", Price: "$200+", Duration: "2-3 hrs", Description: "Long-lasting smoothing treatment"},
			},
		},
		{
			Category: "Styling",
			Services: []Service{
				{Service: "Blow Dry & Style", Price: "$35", Duration: "30 min", Description: "Professional blowout and styling"},
				{Service: "Special Occasion", Price: "$65+", Duration: "60 min", Description: "Formal styling for events"},
				{Service: "Bridal Hair", Price: "$100+", Duration: "90 min", Description: "Includes consultation and trial"},
			},
		},
	}
}
