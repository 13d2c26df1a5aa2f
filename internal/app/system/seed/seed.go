// Package seed loads the sample catalog used for demos and first-run
// environments: six properties, six experiences, and three approved
// testimonials.
package seed

import (
	"context"
	"fmt"

	experiencestore "github.com/vattavada/stayhub/internal/app/store/experiences"
	propertystore "github.com/vattavada/stayhub/internal/app/store/properties"
	testimonialstore "github.com/vattavada/stayhub/internal/app/store/testimonials"
	"github.com/vattavada/stayhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run seeds the database unless it already holds properties. Inserts
// go through the stores so the usual defaults and validation apply.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	n, err := db.Collection("properties").CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("seed: count properties: %w", err)
	}
	if n > 0 {
		logger.Info("seed: properties already present, skipping")
		return nil
	}

	props := propertystore.New(db)
	for _, p := range sampleProperties {
		if _, err := props.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: property %q: %w", p.Title, err)
		}
	}

	exps := experiencestore.New(db)
	for _, e := range sampleExperiences {
		if _, err := exps.Create(ctx, e); err != nil {
			return fmt.Errorf("seed: experience %q: %w", e.Title, err)
		}
	}

	tms := testimonialstore.New(db)
	for _, tm := range sampleTestimonials {
		created, err := tms.Create(ctx, tm)
		if err != nil {
			return fmt.Errorf("seed: testimonial %q: %w", tm.Name, err)
		}
		if _, err := tms.Approve(ctx, created.ID.Hex()); err != nil {
			return fmt.Errorf("seed: approve testimonial %q: %w", tm.Name, err)
		}
	}

	logger.Info("seed: sample data loaded",
		zap.Int("properties", len(sampleProperties)),
		zap.Int("experiences", len(sampleExperiences)),
		zap.Int("testimonials", len(sampleTestimonials)))
	return nil
}

var sampleProperties = []models.Property{
	{
		Title:    "Paradise Resort - Budget Cottage",
		Type:     "Cottage",
		Price:    2500,
		Capacity: "4 guests",
		Rating:   4.5,
		Reviews:  23,
		Image:    "https://images.unsplash.com/photo-1587061949409-02df41d5e562?w=600&h=400&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1587061949409-02df41d5e562?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=600&h=400&fit=crop",
		},
		Description: "Cozy budget cottage nestled in the heart of Vattavada hills. Perfect for families seeking comfortable accommodation with stunning mountain views.",
		Amenities:   []string{"Hot Water", "WiFi", "Parking", "Campfire", "BBQ Area"},
		Location:    "Vattavada, Munnar",
		Attractions: []string{"Top Station - 5km", "Pampadum Shola - 3km", "Strawberry Farm - 2km"},
		Featured:    true,
	},
	{
		Title:    "Misty Mountains Homestay",
		Type:     "Homestay",
		Price:    3200,
		Capacity: "6 guests",
		Rating:   4.7,
		Reviews:  31,
		Image:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=400&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1587061949409-02df41d5e562?w=600&h=400&fit=crop",
		},
		Description: "Experience authentic local hospitality in this charming homestay. Enjoy home-cooked meals and warm Kerala hospitality.",
		Amenities:   []string{"Hot Water", "Home-cooked Meals", "WiFi", "Parking", "Garden"},
		Location:    "Vattavada Village",
		Attractions: []string{"Village Walk - 0km", "Spice Garden - 1km", "Tea Plantation - 2km"},
		Featured:    true,
	},
	{
		Title:    "Adventure Camp Tents",
		Type:     "Tent",
		Price:    1800,
		Capacity: "2 guests",
		Rating:   4.3,
		Reviews:  18,
		Image:    "https://images.unsplash.com/photo-1504851149312-7a075b496cc7?w=600&h=400&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1504851149312-7a075b496cc7?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1487730116645-74489c95b41b?w=600&h=400&fit=crop",
		},
		Description: "Perfect for couples seeking adventure! Sleep under the stars in comfortable tents with all essential facilities.",
		Amenities:   []string{"Shared Restroom", "Campfire", "Adventure Activities", "Breakfast Included"},
		Location:    "Vattavada Hills",
		Attractions: []string{"Trekking Trails - 0km", "Sunrise Point - 1km", "Rock Climbing - 500m"},
		Featured:    true,
	},
	{
		Title:    "Luxury Hill Resort",
		Type:     "Resort",
		Price:    5500,
		Capacity: "4 guests",
		Rating:   4.8,
		Reviews:  42,
		Image:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=600&h=400&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1587061949409-02df41d5e562?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=400&fit=crop",
		},
		Description: "Indulge in luxury amidst nature. Premium resort with world-class amenities and breathtaking valley views.",
		Amenities:   []string{"Hot Water", "WiFi", "Restaurant", "Spa", "Parking", "Room Service"},
		Location:    "Vattavada Peak",
		Attractions: []string{"Valley Viewpoint - 100m", "Tea Museum - 3km", "Elephant Safari - 5km"},
		Featured:    false,
	},
	{
		Title:    "Honeymoon Cottage Retreat",
		Type:     "Cottage",
		Price:    4200,
		Capacity: "2 guests",
		Rating:   4.9,
		Reviews:  28,
		Image:    "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=600&h=400&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=600&h=400&fit=crop",
		},
		Description: "Romantic getaway for couples. Private cottage with exclusive amenities and stunning mountain views perfect for honeymoon.",
		Amenities:   []string{"Hot Water", "Private Balcony", "WiFi", "Romantic Decoration", "Candlelit Dinner"},
		Location:    "Vattavada Hills",
		Attractions: []string{"Sunset Point - 200m", "Private Trek - 0km", "Photography Spots - 100m"},
		Featured:    true,
	},
	{
		Title:    "Farm Stay Experience",
		Type:     "Farmstay",
		Price:    2800,
		Capacity: "8 guests",
		Rating:   4.4,
		Reviews:  35,
		Image:    "https://images.unsplash.com/photo-1487730116645-74489c95b41b?w=600&h=400&fit=crop",
		Gallery: []string{
			"https://images.unsplash.com/photo-1487730116645-74489c95b41b?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1587061949409-02df41d5e562?w=600&h=400&fit=crop",
			"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=400&fit=crop",
		},
		Description: "Experience rural life with modern comforts. Perfect for large families and groups seeking authentic farm experiences.",
		Amenities:   []string{"Hot Water", "Farm Activities", "WiFi", "Parking", "Organic Meals", "Animal Interaction"},
		Location:    "Vattavada Farmlands",
		Attractions: []string{"Organic Farm Tour - 0km", "Dairy Experience - 100m", "Village Market - 2km"},
		Featured:    false,
	},
}

var sampleExperiences = []models.Experience{
	{
		Title:       "Jeep Trekking Adventure",
		Price:       1500,
		Duration:    "4 hours",
		Description: "Thrilling jeep safari through rugged mountain terrain",
		Image:       "https://images.unsplash.com/photo-1544969304-5d7e7dfcdab8?w=600&h=400&fit=crop",
		Highlights:  []string{"Professional guide", "Light refreshments", "Photography stops", "Small groups"},
	},
	{
		Title:       "Campfire & BBQ Night",
		Price:       800,
		Duration:    "3 hours",
		Description: "Cozy evening around bonfire with delicious BBQ",
		Image:       "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=600&h=400&fit=crop",
		Highlights:  []string{"BBQ dinner", "Campfire stories", "Music & games", "Stargazing"},
	},
	{
		Title:       "Tea Plantation Tour",
		Price:       600,
		Duration:    "2 hours",
		Description: "Guided tour through lush tea gardens with tasting session",
		Image:       "https://images.unsplash.com/photo-1597318110364-24ac0a91a2e4?w=600&h=400&fit=crop",
		Highlights:  []string{"Guided tour", "Tea tasting", "Factory visit", "Take home samples"},
	},
	{
		Title:       "Sunrise Trekking",
		Price:       1200,
		Duration:    "5 hours",
		Description: "Early morning trek to catch the spectacular sunrise over the Western Ghats",
		Image:       "https://images.unsplash.com/photo-1551632811-561732d1e306?w=600&h=400&fit=crop",
		Highlights:  []string{"Professional guide", "Light breakfast", "Photography spots", "Small groups"},
	},
	{
		Title:       "Spice Plantation Walk",
		Price:       400,
		Duration:    "2 hours",
		Description: "Guided walk through organic spice plantations with tastings",
		Image:       "https://images.unsplash.com/photo-1596040226097-b5cde5d72421?w=600&h=400&fit=crop",
		Highlights:  []string{"Organic spices", "Local guide", "Tasting session", "Take home samples"},
	},
	{
		Title:       "Village Cultural Tour",
		Price:       800,
		Duration:    "4 hours",
		Description: "Immerse yourself in local culture and traditional Kerala lifestyle",
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=600&h=400&fit=crop",
		Highlights:  []string{"Village interactions", "Traditional crafts", "Local cuisine", "Cultural insights"},
	},
}

var sampleTestimonials = []models.Testimonial{
	{
		Name:     "Priya & Raj",
		Location: "Bangalore",
		Rating:   5,
		Text:     "Perfect honeymoon destination! The cottage was romantic and the views were breathtaking. Highly recommend for couples.",
		Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
	},
	{
		Name:     "Sharma Family",
		Location: "Chennai",
		Rating:   5,
		Text:     "Amazing family vacation! Kids loved the farm activities and we enjoyed the peaceful environment. Will definitely return.",
		Image:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
	},
	{
		Name:     "Adventure Group",
		Location: "Kochi",
		Rating:   4,
		Text:     "Great experience with jeep trekking and camping. The staff was very helpful and the food was delicious.",
		Image:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face",
	},
}
