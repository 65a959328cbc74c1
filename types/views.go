package types

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Typed views over generic Microformats2 items. They are read-only
// projections: building one never changes the underlying Item.
// Properties that a view has no field for are kept in Additional.

// HCard is a view of an h-card item.
type HCard struct {
	Name       string              `json:"name,omitempty"`
	URL        string              `json:"url,omitempty"`
	Photo      string              `json:"photo,omitempty"`
	Email      string              `json:"email,omitempty"`
	Tel        string              `json:"tel,omitempty"`
	Note       string              `json:"note,omitempty"`
	Org        string              `json:"org,omitempty"`
	Additional map[string][]string `json:"additional_properties,omitempty"`
}

// HEntry is a view of an h-entry item.
type HEntry struct {
	Name       string              `json:"name,omitempty"`
	Summary    string              `json:"summary,omitempty"`
	Content    string              `json:"content,omitempty"`
	Published  string              `json:"published,omitempty"`
	Updated    string              `json:"updated,omitempty"`
	Author     *HCard              `json:"author,omitempty"`
	URL        string              `json:"url,omitempty"`
	Category   []string            `json:"category,omitempty"`
	Additional map[string][]string `json:"additional_properties,omitempty"`
}

// HEvent is a view of an h-event item.
type HEvent struct {
	Name        string              `json:"name,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Start       string              `json:"start,omitempty"`
	End         string              `json:"end,omitempty"`
	Location    string              `json:"location,omitempty"`
	URL         string              `json:"url,omitempty"`
	Description string              `json:"description,omitempty"`
	Additional  map[string][]string `json:"additional_properties,omitempty"`
}

// HReview is a view of an h-review item.
type HReview struct {
	Name       string              `json:"name,omitempty"`
	Content    string              `json:"content,omitempty"`
	Summary    string              `json:"summary,omitempty"`
	Published  string              `json:"published,omitempty"`
	Rating     *float64            `json:"rating,omitempty"`
	Best       *float64            `json:"best,omitempty"`
	Worst      *float64            `json:"worst,omitempty"`
	Item       string              `json:"item,omitempty"`
	Reviewer   *HCard              `json:"reviewer,omitempty"`
	URL        string              `json:"url,omitempty"`
	Additional map[string][]string `json:"additional_properties,omitempty"`
}

// HRecipe is a view of an h-recipe item.
type HRecipe struct {
	Name         string              `json:"name,omitempty"`
	Summary      string              `json:"summary,omitempty"`
	Ingredient   []string            `json:"ingredient,omitempty"`
	Instructions string              `json:"instructions,omitempty"`
	Duration     string              `json:"duration,omitempty"`
	Yield        string              `json:"yield,omitempty"`
	Nutrition    string              `json:"nutrition,omitempty"`
	Photo        string              `json:"photo,omitempty"`
	Author       string              `json:"author,omitempty"`
	Published    string              `json:"published,omitempty"`
	Category     []string            `json:"category,omitempty"`
	Additional   map[string][]string `json:"additional_properties,omitempty"`
}

// HProduct is a view of an h-product item.
type HProduct struct {
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	Photo       string              `json:"photo,omitempty"`
	Price       string              `json:"price,omitempty"`
	Brand       string              `json:"brand,omitempty"`
	Category    []string            `json:"category,omitempty"`
	Rating      *float64            `json:"rating,omitempty"`
	URL         string              `json:"url,omitempty"`
	Identifier  string              `json:"identifier,omitempty"`
	Additional  map[string][]string `json:"additional_properties,omitempty"`
}

// HFeed is a view of an h-feed item.
type HFeed struct {
	Name       string              `json:"name,omitempty"`
	Author     string              `json:"author,omitempty"`
	URL        string              `json:"url,omitempty"`
	Photo      string              `json:"photo,omitempty"`
	Entries    []*HEntry           `json:"entries,omitempty"`
	Additional map[string][]string `json:"additional_properties,omitempty"`
}

// HAdr is a view of an h-adr item.
type HAdr struct {
	StreetAddress   string              `json:"street_address,omitempty"`
	ExtendedAddress string              `json:"extended_address,omitempty"`
	PostOfficeBox   string              `json:"post_office_box,omitempty"`
	Locality        string              `json:"locality,omitempty"`
	Region          string              `json:"region,omitempty"`
	PostalCode      string              `json:"postal_code,omitempty"`
	CountryName     string              `json:"country_name,omitempty"`
	Additional      map[string][]string `json:"additional_properties,omitempty"`
}

// HGeo is a view of an h-geo item.
type HGeo struct {
	Latitude   *float64            `json:"latitude,omitempty"`
	Longitude  *float64            `json:"longitude,omitempty"`
	Altitude   *float64            `json:"altitude,omitempty"`
	Additional map[string][]string `json:"additional_properties,omitempty"`
}

// NewHCard builds an HCard view of it.
func NewHCard(it *Item) *HCard {
	if it == nil {
		return nil
	}
	return &HCard{
		Name:       it.Text("name"),
		URL:        it.Text("url"),
		Photo:      it.Text("photo"),
		Email:      strings.TrimPrefix(it.Text("email"), "mailto:"),
		Tel:        strings.TrimPrefix(it.Text("tel"), "tel:"),
		Note:       it.Text("note"),
		Org:        it.Text("org"),
		Additional: additional(it, "name", "url", "photo", "email", "tel", "note", "org"),
	}
}

// NewHEntry builds an HEntry view of it. A nested h-card author becomes
// an HCard; a plain text author becomes an HCard with only a name.
func NewHEntry(it *Item) *HEntry {
	if it == nil {
		return nil
	}
	return &HEntry{
		Name:       it.Text("name"),
		Summary:    it.Text("summary"),
		Content:    it.Text("content"),
		Published:  it.Text("published"),
		Updated:    it.Text("updated"),
		Author:     cardOf(it, "author"),
		URL:        it.Text("url"),
		Category:   it.Texts("category"),
		Additional: additional(it, "name", "summary", "content", "published", "updated", "author", "url", "category"),
	}
}

// NewHEvent builds an HEvent view of it.
func NewHEvent(it *Item) *HEvent {
	if it == nil {
		return nil
	}
	return &HEvent{
		Name:        it.Text("name"),
		Summary:     it.Text("summary"),
		Start:       it.Text("start"),
		End:         it.Text("end"),
		Location:    it.Text("location"),
		URL:         it.Text("url"),
		Description: it.Text("description"),
		Additional:  additional(it, "name", "summary", "start", "end", "location", "url", "description"),
	}
}

// NewHReview builds an HReview view of it.
func NewHReview(it *Item) *HReview {
	if it == nil {
		return nil
	}
	return &HReview{
		Name:       it.Text("name"),
		Content:    it.Text("content"),
		Summary:    it.Text("summary"),
		Published:  it.Text("published"),
		Rating:     floatOf(it, "rating"),
		Best:       floatOf(it, "best"),
		Worst:      floatOf(it, "worst"),
		Item:       it.Text("item"),
		Reviewer:   cardOf(it, "author", "reviewer"),
		URL:        it.Text("url"),
		Additional: additional(it, "name", "content", "summary", "published", "rating", "best", "worst", "item", "author", "reviewer", "url"),
	}
}

// NewHRecipe builds an HRecipe view of it.
func NewHRecipe(it *Item) *HRecipe {
	if it == nil {
		return nil
	}
	return &HRecipe{
		Name:         it.Text("name"),
		Summary:      it.Text("summary"),
		Ingredient:   it.Texts("ingredient"),
		Instructions: it.Text("instructions"),
		Duration:     it.Text("duration"),
		Yield:        it.Text("yield"),
		Nutrition:    it.Text("nutrition"),
		Photo:        it.Text("photo"),
		Author:       it.Text("author"),
		Published:    it.Text("published"),
		Category:     it.Texts("category"),
		Additional: additional(it, "name", "summary", "ingredient", "instructions", "duration",
			"yield", "nutrition", "photo", "author", "published", "category"),
	}
}

// NewHProduct builds an HProduct view of it.
func NewHProduct(it *Item) *HProduct {
	if it == nil {
		return nil
	}
	return &HProduct{
		Name:        it.Text("name"),
		Description: it.Text("description"),
		Photo:       it.Text("photo"),
		Price:       it.Text("price"),
		Brand:       it.Text("brand"),
		Category:    it.Texts("category"),
		Rating:      floatOf(it, "rating"),
		URL:         it.Text("url"),
		Identifier:  it.Text("identifier"),
		Additional: additional(it, "name", "description", "photo", "price", "brand", "category",
			"rating", "url", "identifier"),
	}
}

// NewHFeed builds an HFeed view of it. Entries are the nested h-entry
// items found anywhere below the feed.
func NewHFeed(it *Item) *HFeed {
	if it == nil {
		return nil
	}
	feed := &HFeed{
		Name:       it.Text("name"),
		Author:     it.Text("author"),
		URL:        it.Text("url"),
		Photo:      it.Text("photo"),
		Additional: additional(it, "name", "author", "url", "photo", "children"),
	}
	for _, vals := range it.Properties.All() {
		for _, v := range vals {
			if v.IsItem() {
				for _, e := range Find([]*Item{v.Item}, "h-entry") {
					feed.Entries = append(feed.Entries, NewHEntry(e))
				}
			}
		}
	}
	return feed
}

// NewHAdr builds an HAdr view of it.
func NewHAdr(it *Item) *HAdr {
	if it == nil {
		return nil
	}
	return &HAdr{
		StreetAddress:   it.Text("street-address"),
		ExtendedAddress: it.Text("extended-address"),
		PostOfficeBox:   it.Text("post-office-box"),
		Locality:        it.Text("locality"),
		Region:          it.Text("region"),
		PostalCode:      it.Text("postal-code"),
		CountryName:     it.Text("country-name"),
		Additional: additional(it, "street-address", "extended-address", "post-office-box",
			"locality", "region", "postal-code", "country-name"),
	}
}

// NewHGeo builds an HGeo view of it.
func NewHGeo(it *Item) *HGeo {
	if it == nil {
		return nil
	}
	return &HGeo{
		Latitude:   floatOf(it, "latitude"),
		Longitude:  floatOf(it, "longitude"),
		Altitude:   floatOf(it, "altitude"),
		Additional: additional(it, "latitude", "longitude", "altitude"),
	}
}

// PublishedTime parses Published. Dates are kept as written in the
// view; parsing only happens on request.
func (e *HEntry) PublishedTime() (time.Time, error) {
	return DateTime(e.Published).Time()
}

// UpdatedTime parses Updated.
func (e *HEntry) UpdatedTime() (time.Time, error) {
	return DateTime(e.Updated).Time()
}

// StartTime parses Start.
func (e *HEvent) StartTime() (time.Time, error) {
	return DateTime(e.Start).Time()
}

// EndTime parses End.
func (e *HEvent) EndTime() (time.Time, error) {
	return DateTime(e.End).Time()
}

// PublishedTime parses Published.
func (r *HReview) PublishedTime() (time.Time, error) {
	return DateTime(r.Published).Time()
}

func cardOf(it *Item, names ...string) *HCard {
	for _, name := range names {
		if child := it.Child(name); child != nil {
			return NewHCard(child)
		}
		if s := it.Text(name); s != "" {
			return &HCard{Name: s}
		}
	}
	return nil
}

func floatOf(it *Item, name string) *float64 {
	s := strings.TrimSpace(it.Text(name))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func additional(it *Item, known ...string) map[string][]string {
	var res map[string][]string
	for name := range it.Properties.All() {
		if slices.Contains(known, name) {
			continue
		}
		if res == nil {
			res = map[string][]string{}
		}
		res[name] = it.Texts(name)
	}
	return res
}
