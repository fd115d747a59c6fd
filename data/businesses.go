// Package data holds the compiled-in directory fixtures.
package data

import "github.com/lexabu/woman-owned.com/model"

const placeholderImage = "/images/placeholder.svg"

// Businesses returns a fresh copy of the listed businesses
func Businesses() []model.Business {
	return []model.Business{
		{
			ID:          "1",
			Name:        "Lana Salon Suite",
			Slug:        "lana-salon-suite",
			Description: "Premier beauty salon offering personalized hair styling, coloring, and beauty treatments in an upscale, intimate setting. Lana provides expert hair care services with a focus on creating stunning, customized looks for every client.",
			Category:    "Beauty & Wellness",
			City:        "Lexington",
			State:       "Kentucky",
			Website:     "https://lanasalonsuite.com",
			Owner: model.Owner{
				Name: "Lana",
				Bio:  "Professional stylist with years of experience in creating beautiful, personalized looks for her clients.",
			},
			Image: placeholderImage,
			Services: []string{
				"Hair Styling",
				"Hair Coloring",
				"Highlights",
				"Hair Treatments",
				"Blowouts",
				"Special Occasion Styling",
			},
			SocialMedia: &model.SocialMedia{
				Instagram: "@lanasalonsuite",
				Facebook:  "LanaSalonSuite",
			},
			Contact: &model.Contact{
				Phone: "(859) 555-0123",
				Email: "hello@lanasalonsuite.com",
			},
			Featured:  true,
			CreatedAt: "2025-01-01",
		},
		{
			ID:          "2",
			Name:        "Almaza Fine Jewelry",
			Slug:        "almaza-fine-jewelry",
			Description: "Exquisite handcrafted jewelry featuring unique designs and premium materials. Almaza specializes in custom pieces, engagement rings, and fine jewelry that tells your story through beautiful, timeless craftsmanship.",
			Category:    "Fashion & Jewelry",
			City:        "Lexington",
			State:       "Kentucky",
			Website:     "https://almazafinejewelry.com",
			Owner: model.Owner{
				Name: "Almaza",
				Bio:  "Master jeweler and designer creating one-of-a-kind pieces that celebrate life's special moments.",
			},
			Image: placeholderImage,
			Services: []string{
				"Custom Jewelry Design",
				"Engagement Rings",
				"Wedding Bands",
				"Fine Jewelry",
				"Jewelry Repair",
				"Appraisals",
			},
			SocialMedia: &model.SocialMedia{
				Instagram: "@almazafinejewelry",
				Facebook:  "AlmazaFineJewelry",
			},
			Contact: &model.Contact{
				Phone: "(859) 555-0124",
				Email: "info@almazafinejewelry.com",
			},
			Featured:  true,
			CreatedAt: "2025-01-01",
		},
		{
			ID:          "3",
			Name:        "Shop Marais Home",
			Slug:        "shop-marais-home",
			Description: "Curated home decor and lifestyle boutique featuring unique furnishings, art, and accessories. Shop Marais Home brings together beautiful, carefully selected pieces to help you create a home that reflects your personal style.",
			Category:    "Home & Lifestyle",
			City:        "Lexington",
			State:       "Kentucky",
			Website:     "https://shopmaraishome.com",
			Owner: model.Owner{
				Name: "Marais",
				Bio:  "Interior design enthusiast and curator with an eye for beautiful, unique pieces that make a house feel like home.",
			},
			Image: placeholderImage,
			Services: []string{
				"Home Decor",
				"Furniture",
				"Art & Accessories",
				"Interior Styling",
				"Gift Items",
				"Custom Orders",
			},
			SocialMedia: &model.SocialMedia{
				Instagram: "@shopmaraishome",
				Facebook:  "ShopMaraisHome",
			},
			Contact: &model.Contact{
				Phone: "(859) 555-0125",
				Email: "hello@shopmaraishome.com",
			},
			Featured:  true,
			CreatedAt: "2025-01-01",
		},
	}
}

// Categories returns the declared categories. BusinessCount values here are
// informational only; the directory recomputes them from Businesses.
func Categories() []model.Category {
	return []model.Category{
		{Name: "Beauty & Wellness", Slug: "beauty", BusinessCount: 1},
		{Name: "Fashion & Jewelry", Slug: "fashion", BusinessCount: 1},
		{Name: "Home & Lifestyle", Slug: "home", BusinessCount: 1},
	}
}

// Cities returns the declared cities
func Cities() []model.City {
	return []model.City{
		{Name: "Lexington", Slug: "lexington", State: "Kentucky", BusinessCount: 3},
	}
}
