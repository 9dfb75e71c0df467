package emoji

import (
	"strconv"
	"strings"

	"github.com/atomicstack/emoji-palette/internal/logging"
)

// Category identifies an emoji category. Values are small, dense and index
// directly into the descriptor table.
type Category int

const (
	Recents Category = iota
	SmileysEmotion
	PeopleBody
	AnimalsNature
	FoodDrink
	TravelPlaces
	Activities
	Objects
	Symbols
	Flags
	Emoticons

	categoryCount
)

// Descriptor holds the static attributes of a category.
type Descriptor struct {
	ID          Category
	Name        string
	Icon        string
	Description string
	Source      string
}

const pageNameSeparator = "-"

var descriptors = [categoryCount]Descriptor{
	Recents:        {ID: Recents, Name: "recents", Icon: "🕘", Description: "Recently used emoji", Source: "recents"},
	SmileysEmotion: {ID: SmileysEmotion, Name: "smileys & emotion", Icon: "😀", Description: "Smileys and emotions", Source: "smileys_emotion"},
	PeopleBody:     {ID: PeopleBody, Name: "people & body", Icon: "👋", Description: "People and body", Source: "people_body"},
	AnimalsNature:  {ID: AnimalsNature, Name: "animals & nature", Icon: "🐻", Description: "Animals and nature", Source: "animals_nature"},
	FoodDrink:      {ID: FoodDrink, Name: "food & drink", Icon: "🍔", Description: "Food and drink", Source: "food_drink"},
	TravelPlaces:   {ID: TravelPlaces, Name: "travel & places", Icon: "🚗", Description: "Travel and places", Source: "travel_places"},
	Activities:     {ID: Activities, Name: "activities", Icon: "⚽", Description: "Activities", Source: "activities"},
	Objects:        {ID: Objects, Name: "objects", Icon: "💡", Description: "Objects", Source: "objects"},
	Symbols:        {ID: Symbols, Name: "symbols", Icon: "🔣", Description: "Symbols", Source: "symbols"},
	Flags:          {ID: Flags, Name: "flags", Icon: "🏁", Description: "Flags", Source: "flags"},
	Emoticons:      {ID: Emoticons, Name: "emoticons", Icon: ":-)", Description: "Emoticons", Source: "emoticons"},
}

var nameToCategory = func() map[string]Category {
	m := make(map[string]Category, len(descriptors))
	for _, d := range descriptors {
		m[d.Name] = d.ID
	}
	return m
}()

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return "category(" + strconv.Itoa(int(c)) + ")"
	}
	return descriptors[c].Name
}

// Categories lists every known category in id order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Describe returns the static attributes for c. Unknown ids are logged and
// yield the zero Descriptor.
func Describe(c Category) Descriptor {
	if !c.Valid() {
		logging.Warnf("invalid category id: %d", int(c))
		return Descriptor{}
	}
	return descriptors[c]
}

// PageName builds the stable "name-page" key for a category page.
func PageName(c Category, page int) string {
	return Describe(c).Name + pageNameSeparator + strconv.Itoa(page)
}

// IDForName resolves the category prefix of a name produced by PageName.
func IDForName(name string) (Category, bool) {
	prefix, _, _ := strings.Cut(name, pageNameSeparator)
	if c, ok := nameToCategory[prefix]; ok {
		return c, true
	}
	logging.Warnf("unknown category name: %q", name)
	return Recents, false
}

// ParseCategory accepts a display name, a source id or a decimal id.
func ParseCategory(s string) (Category, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" {
		return Recents, false
	}
	if c, ok := nameToCategory[trimmed]; ok {
		return c, true
	}
	for _, d := range descriptors {
		if d.Source == trimmed {
			return d.ID, true
		}
	}
	if n, err := strconv.Atoi(trimmed); err == nil && Category(n).Valid() {
		return Category(n), true
	}
	return Recents, false
}
