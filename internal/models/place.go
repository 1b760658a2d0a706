package models

// Persisted field names. Stores key documents and partial updates by these.
const (
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldImage       = "image"
)

// PlaceFields lists every writable place field in display order.
var PlaceFields = []string{FieldTitle, FieldPrice, FieldDescription, FieldLocation, FieldImage}

// Place represents a tourist location.
type Place struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

// CreatePlaceInput carries the fields for a new place. Absent fields are empty.
type CreatePlaceInput struct {
	Title       string
	Price       string
	Description string
	Location    string
	Image       string
}

// Fields returns the input as a map keyed by persisted field name.
func (in CreatePlaceInput) Fields() map[string]string {
	return map[string]string{
		FieldTitle:       in.Title,
		FieldPrice:       in.Price,
		FieldDescription: in.Description,
		FieldLocation:    in.Location,
		FieldImage:       in.Image,
	}
}

// Place builds an unsaved Place from the input.
func (in CreatePlaceInput) Place() Place {
	return Place{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Location:    in.Location,
		Image:       in.Image,
	}
}

// UpdatePlaceInput carries a partial update. A nil field is left unchanged.
type UpdatePlaceInput struct {
	Title       *string
	Price       *string
	Description *string
	Location    *string
	Image       *string
}

// Fields returns only the fields that are set, keyed by persisted field name.
// Nothing outside the five place fields can appear in the result.
func (in UpdatePlaceInput) Fields() map[string]string {
	fields := make(map[string]string, len(PlaceFields))
	set := func(name string, v *string) {
		if v != nil {
			fields[name] = *v
		}
	}
	set(FieldTitle, in.Title)
	set(FieldPrice, in.Price)
	set(FieldDescription, in.Description)
	set(FieldLocation, in.Location)
	set(FieldImage, in.Image)
	return fields
}

// IsEmpty reports whether the update would change nothing.
func (in UpdatePlaceInput) IsEmpty() bool {
	return len(in.Fields()) == 0
}

// Apply overwrites the fields of p that are set in the input.
func (in UpdatePlaceInput) Apply(p *Place) {
	for name, value := range in.Fields() {
		p.Set(name, value)
	}
}

// Set assigns a field by its persisted name. Unknown names are ignored.
func (p *Place) Set(name, value string) {
	switch name {
	case FieldTitle:
		p.Title = value
	case FieldPrice:
		p.Price = value
	case FieldDescription:
		p.Description = value
	case FieldLocation:
		p.Location = value
	case FieldImage:
		p.Image = value
	}
}

// Get returns a field by its persisted name.
func (p Place) Get(name string) string {
	switch name {
	case FieldTitle:
		return p.Title
	case FieldPrice:
		return p.Price
	case FieldDescription:
		return p.Description
	case FieldLocation:
		return p.Location
	case FieldImage:
		return p.Image
	}
	return ""
}
