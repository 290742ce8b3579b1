package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotAvailable is stored for address parts the owner left blank
const NotAvailable = "N/A"

// TypeAll disables the property type filter
const TypeAll = "all"

// Location is where a property is and how to pin it on a map
type Location struct {
	Address string  `json:"address" gorm:"type:varchar(255);default:'N/A'" bson:"address"`
	City    string  `json:"city" gorm:"type:varchar(100);default:'N/A'" bson:"city"`
	State   string  `json:"state" gorm:"type:varchar(100);default:'N/A'" bson:"state"`
	Lat     float64 `json:"lat" gorm:"default:0" bson:"lat"`
	Lng     float64 `json:"lng" gorm:"default:0" bson:"lng"`
}

// WithDefaults fills blank address parts with NotAvailable
func (l Location) WithDefaults() Location {
	if strings.TrimSpace(l.Address) == "" {
		l.Address = NotAvailable
	}
	if strings.TrimSpace(l.City) == "" {
		l.City = NotAvailable
	}
	if strings.TrimSpace(l.State) == "" {
		l.State = NotAvailable
	}
	return l
}

// Property is a listing published by an owner
type Property struct {
	ID          string                      `json:"id" gorm:"primaryKey;type:varchar(36)" bson:"_id"`
	Title       string                      `json:"title" gorm:"type:varchar(255);not null" bson:"title"`
	Type        string                      `json:"type" gorm:"type:varchar(50);not null;index" bson:"type"`
	Description string                      `json:"description" gorm:"type:text" bson:"description"`
	Price       float64                     `json:"price" gorm:"not null" bson:"price"`
	SquareFeet  float64                     `json:"squareFeet" gorm:"default:0" bson:"squareFeet"`
	Bedrooms    int                         `json:"bedrooms" gorm:"default:0" bson:"bedrooms"`
	Bathrooms   int                         `json:"bathrooms" gorm:"default:0" bson:"bathrooms"`
	Location    Location                    `json:"location" gorm:"embedded;embeddedPrefix:location_" bson:"location"`
	Images      datatypes.JSONSlice[string] `json:"images" bson:"images"`
	OwnerID     string                      `json:"owner" gorm:"type:varchar(36);index;not null" bson:"owner"`
	CreatedAt   time.Time                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	return nil
}

// OwnedBy reports whether userID is the listing owner
func (p *Property) OwnedBy(userID string) bool {
	return userID != "" && p.OwnerID == userID
}

// PropertyQuery is the part of a property search the store evaluates
type PropertyQuery struct {
	Search string
	Type   string
}

// SearchTerm returns the trimmed free-text term, empty when there is none
func (q PropertyQuery) SearchTerm() string {
	return strings.TrimSpace(q.Search)
}

// TypeFilter returns the exact type to match, empty when the filter is off
func (q PropertyQuery) TypeFilter() string {
	t := strings.TrimSpace(q.Type)
	if strings.EqualFold(t, TypeAll) {
		return ""
	}
	return t
}

// PropertyListing is the list representation of a property with its owner's contact details
type PropertyListing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	SquareFeet  float64  `json:"sqft"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Type        string   `json:"type"`
	Images      []string `json:"images"`
	Location    Location `json:"location"`
	OwnerID     *string  `json:"ownerId"`
	OwnerName   string   `json:"ownerName"`
	OwnerEmail  string   `json:"ownerEmail"`
}

const unavailable = "Unavailable"

// NewPropertyListing builds the list representation; owner may be nil when the account is gone
func NewPropertyListing(p Property, owner *User) PropertyListing {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}

	listing := PropertyListing{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		SquareFeet:  p.SquareFeet,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Type:        p.Type,
		Images:      images,
		Location:    p.Location,
		OwnerName:   unavailable,
		OwnerEmail:  unavailable,
	}
	if owner != nil {
		id := owner.ID
		listing.OwnerID = &id
		listing.OwnerName = owner.Name
		listing.OwnerEmail = owner.Email
	}
	return listing
}
