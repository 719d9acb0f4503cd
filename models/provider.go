package models

import "time"

// Service is one priced offering in a provider's catalogue.
type Service struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Profile holds the public-facing provider details QuickFind reads.
type Profile struct {
	ProviderName string   `bson:"providerName" json:"providerName,omitempty"`
	Email        string   `bson:"email" json:"email,omitempty"`
	PhoneNumber  string   `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address      string   `bson:"address" json:"address,omitempty"`
	LogoURL      string   `bson:"logoUrl" json:"logoUrl,omitempty"`
	Rating       float64  `bson:"rating" json:"rating,omitempty"`
	LocationGeo  GeoPoint `bson:"locationGeo" json:"locationGeo"`
}

// Provider is the catalog entity. It is owned and mutated by the catalog
// subsystem; QuickFind only reads a snapshot per request.
type Provider struct {
	ID        string    `bson:"id" json:"id,omitempty"`
	Profile   Profile   `bson:"profile" json:"profile"`
	Category  string    `bson:"category" json:"category,omitempty"`
	Services  []Service `bson:"services" json:"services,omitempty"`
	Active    bool      `bson:"active" json:"active"`
	FCMToken  string    `bson:"fcmToken" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// CheapestService returns the lowest-priced service in the catalogue, or nil
// when the provider lists none.
func (p *Provider) CheapestService() *Service {
	var cheapest *Service
	for i := range p.Services {
		if cheapest == nil || p.Services[i].Price < cheapest.Price {
			cheapest = &p.Services[i]
		}
	}
	return cheapest
}

// ServiceByID looks up a listed service by id.
func (p *Provider) ServiceByID(id string) *Service {
	for i := range p.Services {
		if p.Services[i].ID == id {
			return &p.Services[i]
		}
	}
	return nil
}
