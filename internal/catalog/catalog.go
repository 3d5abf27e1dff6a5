// Package catalog holds the fixed table of fest categories and priced events.
package catalog

import "fmt"

type CategoryID int

const (
	Cultural CategoryID = iota
	Literary
	Technical
	ESports
	Sports
)

func (c CategoryID) String() string {
	switch c {
	case Cultural:
		return "Cultural"
	case Literary:
		return "Literary"
	case Technical:
		return "Technical"
	case ESports:
		return "E-Sports"
	case Sports:
		return "Sports"
	default:
		return fmt.Sprintf("CategoryID(%d)", int(c))
	}
}

// Event prices are whole rupees.
type Event struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Category struct {
	ID     CategoryID `json:"-"`
	Title  string     `json:"title"`
	Icon   string     `json:"icon"`
	Events []Event    `json:"events"`
}

var categories = [...]Category{
	{
		ID:   Cultural,
		Icon: "🎭",
		Events: []Event{
			{Name: "Dance Competition", Price: 90},
			{Name: "Face Painting", Price: 50},
			{Name: "Dance Battle", Price: 100},
			{Name: "Ramp Walk", Price: 70},
			{Name: "Rangoli", Price: 60},
			{Name: "Singing", Price: 85},
		},
	},
	{
		ID:   Literary,
		Icon: "📚",
		Events: []Event{
			{Name: "Poster presentation", Price: 75},
			{Name: "Kavi Kosh (Poetry)", Price: 65},
			{Name: "Mind Master", Price: 75},
			{Name: "AD-MAD-SHOW", Price: 70},
			{Name: "IPL Auction", Price: 95},
			{Name: "Extempore", Price: 60},
			{Name: "Designer Cut", Price: 60},
		},
	},
	{
		ID:   Technical,
		Icon: "💻",
		Events: []Event{
			{Name: "Drug-o-vation", Price: 90},
			{Name: "Tech Quiz", Price: 100},
			{Name: "Buddhi Marsh", Price: 85},
			{Name: "Code Encounter", Price: 100},
			{Name: "Commerce Quize", Price: 95},
			{Name: "Pharma Debate", Price: 95},
		},
	},
	{
		ID:   ESports,
		Icon: "🎮",
		Events: []Event{
			{Name: "Freefire and BGMI", Price: 100},
		},
	},
	{
		ID:   Sports,
		Icon: "🏆",
		Events: []Event{
			{Name: "Arm Wrestling", Price: 50},
			{Name: "Badminton", Price: 70},
			{Name: "Kabaddi", Price: 80},
			{Name: "Chess", Price: 60},
			{Name: "Volleyball", Price: 70},
			{Name: "Kho-Kho", Price: 70},
			{Name: "Carrom", Price: 70},
		},
	},
}

var byName map[string]Event

func init() {
	for i := range categories {
		categories[i].Title = categories[i].ID.String()
	}

	idx, err := index(categories[:])
	if err != nil {
		panic(err)
	}

	byName = idx
}

// index maps every event name to its event. Names must be unique across categories.
func index(cats []Category) (map[string]Event, error) {
	idx := make(map[string]Event)

	for _, c := range cats {
		if len(c.Events) == 0 {
			return nil, fmt.Errorf("catalog: category %q has no events", c.Title)
		}

		for _, e := range c.Events {
			if e.Name == "" {
				return nil, fmt.Errorf("catalog: category %q has an unnamed event", c.Title)
			}
			if e.Price < 0 {
				return nil, fmt.Errorf("catalog: event %q has a negative price", e.Name)
			}
			if _, ok := idx[e.Name]; ok {
				return nil, fmt.Errorf("catalog: duplicate event name %q", e.Name)
			}
			idx[e.Name] = e
		}
	}

	return idx, nil
}

// Categories returns a copy of the table in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		c.Events = append([]Event(nil), c.Events...)
		out[i] = c
	}

	return out
}

func Lookup(name string) (Event, bool) {
	e, ok := byName[name]
	return e, ok
}

// Total sums the prices of the selected events. Repeated and unknown names add nothing.
func Total(selected []string) int {
	seen := make(map[string]struct{}, len(selected))
	total := 0

	for _, name := range selected {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if e, ok := byName[name]; ok {
			total += e.Price
		}
	}

	return total
}

// Unknown returns the selected names that are not in the catalog, in input order.
func Unknown(selected []string) []string {
	var out []string

	for _, name := range selected {
		if _, ok := byName[name]; !ok {
			out = append(out, name)
		}
	}

	return out
}
