// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package templates holds the static library of predefined page layouts.
// Creating a page from a template seeds its component list with a full
// curated section stack instead of an empty page. Layouts are canonical
// and immutable; Instantiate hands out copies with fresh component IDs.
package templates

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"pagesmith/internal/models"
)

// Template is one predefined page layout.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // business, saas, ecommerce, agency, portfolio
	Theme       string `json:"theme"`    // suggested theme registry ID

	components []models.Component
}

// Sections returns the number of components the template seeds.
func (t *Template) Sections() int { return len(t.components) }

// Get returns the template with the given ID.
func Get(id string) (Template, bool) {
	t, ok := registry[id]
	return t, ok
}

// IDs returns all template IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every template, sorted by ID.
func All() []Template {
	out := make([]Template, 0, len(registry))
	for _, id := range IDs() {
		out = append(out, registry[id])
	}
	return out
}

// Instantiate returns a copy of the template's component list with fresh
// component IDs, ready to become a new page's components.
func Instantiate(id string) ([]models.Component, bool) {
	t, ok := registry[id]
	if !ok {
		return nil, false
	}
	components := make([]models.Component, len(t.components))
	copy(components, t.components)
	for i := range components {
		components[i].ID = uuid.NewString()
	}
	return components, true
}

// mustRaw marshals a canonical config struct. The template structs are
// static and always marshal cleanly.
func mustRaw(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}

var registry = map[string]Template{
	"modern-business": {
		ID:          "modern-business",
		Name:        "Modern Business",
		Description: "Professional business layout with hero, features, pricing, and a closing call to action.",
		Category:    "business",
		Theme:       "corporate",
		components: []models.Component{
			{Type: models.TypeHero, Order: 0, Config: mustRaw(models.HeroConfig{
				Title:        "Transform Your Business Today",
				Subtitle:     "Innovative solutions for modern companies",
				Description:  "We help businesses scale with expert guidance and dependable tooling. Join thousands of satisfied clients.",
				PrimaryCTA:   &models.CTAButton{Text: "Get Started", Link: "#pricing"},
				SecondaryCTA: &models.CTAButton{Text: "Learn More", Link: "#features", Style: "outline"},
				Background:   models.BackgroundConfig{Type: models.BackgroundGradient, Gradient: &models.GradientConfig{From: "#667eea", To: "#764ba2", Direction: "to-br"}},
			})},
			{Type: models.TypeFeatures, Order: 1, Config: mustRaw(models.FeaturesConfig{
				Title:       "Why Choose Us",
				Description: "Comprehensive solutions designed for modern businesses",
				Columns:     3,
				Features: []models.FeatureItem{
					{Title: "Fast & Reliable", Description: "Lightning-fast performance with a 99.9% uptime guarantee.", Icon: "⚡"},
					{Title: "Secure", Description: "Enterprise-grade security to protect your data.", Icon: "🔒"},
					{Title: "24/7 Support", Description: "Round-the-clock customer support whenever you need it.", Icon: "💬"},
					{Title: "Easy Integration", Description: "Connects seamlessly with the tools you already use.", Icon: "🔗"},
					{Title: "Analytics", Description: "Real-time insights and detailed reporting.", Icon: "📊"},
					{Title: "Scalable", Description: "Grows without limits as your business expands.", Icon: "📈"},
				},
			})},
			{Type: models.TypePricing, Order: 2, Config: mustRaw(models.PricingConfig{
				Title:       "Simple, Transparent Pricing",
				Description: "No hidden fees. Cancel anytime.",
				Plans: []models.PricingPlan{
					{Name: "Starter", Description: "Perfect for small businesses", Price: "$29", Period: "/month",
						Features: []string{"Up to 5 users", "Basic analytics", "Email support"}},
					{Name: "Professional", Description: "For growing teams", Price: "$79", Period: "/month", Highlighted: true,
						Features: []string{"Up to 25 users", "Advanced analytics", "Priority support", "Custom integrations"}},
					{Name: "Enterprise", Description: "For large organizations", Price: "$199", Period: "/month",
						Features: []string{"Unlimited users", "Full analytics suite", "Dedicated support", "SLA guarantee"}},
				},
			})},
			{Type: models.TypeTestimonials, Order: 3, Config: mustRaw(models.TestimonialsConfig{
				Title:       "Trusted by Industry Leaders",
				Description: "Don't just take our word for it",
				Testimonials: []models.TestimonialItem{
					{Name: "Sarah Chen", Role: "CEO", Company: "TechFlow", Rating: 5,
						Text: "Switching to this platform was the best decision we made this year. Our productivity doubled."},
					{Name: "Marcus Webb", Role: "Operations Director", Company: "Northwind", Rating: 5,
						Text: "The support team is outstanding and the product keeps getting better."},
				},
			})},
			{Type: models.TypeCTA, Order: 4, Config: mustRaw(models.CTAConfig{
				Title:       "Ready to Get Started?",
				Description: "Join thousands of successful businesses. Start your free trial today.",
				PrimaryCTA:  &models.CTAButton{Text: "Start Free Trial", Link: "#pricing"},
				Background:  models.BackgroundConfig{Type: models.BackgroundSolid, Color: "#1e293b"},
			})},
			{Type: models.TypeFooter, Order: 5, Config: mustRaw(models.FooterConfig{
				Tagline:   "Building the future of business technology.",
				Copyright: "© 2026 Your Company. All rights reserved.",
				Columns: []models.FooterColumn{
					{Title: "Product", Links: []models.FooterLink{{Text: "Features", Link: "#features"}, {Text: "Pricing", Link: "#pricing"}}},
					{Title: "Company", Links: []models.FooterLink{{Text: "About", Link: "/about"}, {Text: "Contact", Link: "/contact"}}},
				},
			})},
		},
	},

	"saas-product": {
		ID:          "saas-product",
		Name:        "SaaS Product",
		Description: "Product launch layout with feature showcase, tiered pricing, and an FAQ.",
		Category:    "saas",
		Theme:       "modern",
		components: []models.Component{
			{Type: models.TypeHero, Order: 0, Config: mustRaw(models.HeroConfig{
				Title:        "Your Workflow, Simplified",
				Subtitle:     "Everything you need in one place",
				Description:  "Run your whole team from a single dashboard. No technical knowledge required.",
				PrimaryCTA:   &models.CTAButton{Text: "Try It Free", Link: "#pricing"},
				SecondaryCTA: &models.CTAButton{Text: "See Features", Link: "#features", Style: "secondary"},
				Background:   models.BackgroundConfig{Type: models.BackgroundGradient, Gradient: &models.GradientConfig{From: "#3b82f6", To: "#06b6d4", Direction: "to-r"}},
			})},
			{Type: models.TypeFeatures, Order: 1, Config: mustRaw(models.FeaturesConfig{
				Title:       "Built for Modern Teams",
				Description: "Move fast without breaking things",
				Columns:     2,
				Features: []models.FeatureItem{
					{Title: "Real-time Collaboration", Description: "Work together seamlessly, wherever your team is.", Icon: "🤝"},
					{Title: "Automation", Description: "Automate repetitive tasks and focus on what matters.", Icon: "🤖"},
					{Title: "Smart Analytics", Description: "Powerful reporting with zero configuration.", Icon: "📊"},
					{Title: "Integrations", Description: "Connect all your favorite tools and apps.", Icon: "🔌"},
				},
			})},
			{Type: models.TypePricing, Order: 2, Config: mustRaw(models.PricingConfig{
				Title:       "Plans That Scale With You",
				Description: "All plans include a 14-day free trial",
				Plans: []models.PricingPlan{
					{Name: "Free", Description: "For individuals getting started", Price: "$0", Period: "/month",
						Features: []string{"1 workspace", "Community support"}},
					{Name: "Pro", Description: "For professional teams", Price: "$12", Period: "/user/month", Highlighted: true, Badge: "Most Popular",
						Features: []string{"Unlimited workspaces", "Automation", "Priority support"}},
					{Name: "Business", Description: "For large organizations", Price: "$29", Period: "/user/month",
						Features: []string{"Everything in Pro", "SSO", "Audit logs", "SLA"}},
				},
			})},
			{Type: models.TypeFAQ, Order: 3, Config: mustRaw(models.FAQConfig{
				Title: "Frequently Asked Questions",
				Items: []models.FAQItem{
					{Question: "Can I cancel anytime?", Answer: "Yes. Plans are month to month and you can cancel with one click."},
					{Question: "Do you offer discounts for nonprofits?", Answer: "We do — contact us and we'll set you up."},
					{Question: "Is my data secure?", Answer: "All data is encrypted in transit and at rest."},
				},
			})},
			{Type: models.TypeCTA, Order: 4, Config: mustRaw(models.CTAConfig{
				Title:       "Start Building Today",
				Description: "No credit card required. Set up in minutes.",
				PrimaryCTA:  &models.CTAButton{Text: "Create Free Account", Link: "#pricing"},
				Background:  models.BackgroundConfig{Type: models.BackgroundGradient, Gradient: &models.GradientConfig{From: "#1e3a5f", To: "#0f172a", Direction: "to-br"}},
			})},
			{Type: models.TypeFooter, Order: 5, Config: mustRaw(models.FooterConfig{
				Tagline:   "The all-in-one platform for modern teams.",
				Copyright: "© 2026 Your Product. All rights reserved.",
				Columns: []models.FooterColumn{
					{Title: "Product", Links: []models.FooterLink{{Text: "Features", Link: "#features"}, {Text: "Pricing", Link: "#pricing"}, {Text: "FAQ", Link: "#faq"}}},
				},
			})},
		},
	},

	"agency-creative": {
		ID:          "agency-creative",
		Name:        "Creative Agency",
		Description: "Bold layout for agencies and studios: services, portfolio gallery, and a contact form.",
		Category:    "agency",
		Theme:       "playful",
		components: []models.Component{
			{Type: models.TypeHero, Order: 0, Config: mustRaw(models.HeroConfig{
				Title:       "We Make Brands Unforgettable",
				Subtitle:    "Design · Development · Strategy",
				Description: "We create stunning digital experiences that captivate your audience and drive results.",
				PrimaryCTA:  &models.CTAButton{Text: "Work With Us", Link: "#contact"},
				Alignment:   "left",
				Background:  models.BackgroundConfig{Type: models.BackgroundGradient, Gradient: &models.GradientConfig{From: "#ec4899", To: "#a855f7", Direction: "to-tr"}},
			})},
			{Type: models.TypeFeatures, Order: 1, Config: mustRaw(models.FeaturesConfig{
				Title:       "What We Do",
				Description: "Full-service creative solutions",
				Columns:     3,
				Features: []models.FeatureItem{
					{Title: "Brand Identity", Description: "Memorable brands that stand out from the crowd.", Icon: "✨"},
					{Title: "Web Development", Description: "Fast, beautiful websites built to convert.", Icon: "💻"},
					{Title: "UX Design", Description: "Experiences users love coming back to.", Icon: "🎨"},
				},
			})},
			{Type: models.TypeGallery, Order: 2, Config: mustRaw(models.GalleryConfig{
				Title:   "Selected Work",
				Columns: 3,
				Images: []models.GalleryImage{
					{URL: "/assets/placeholder-work-1.png", Title: "Rebrand — Atlas Coffee", Alt: "Atlas Coffee rebrand"},
					{URL: "/assets/placeholder-work-2.png", Title: "Web — Harbor Hotels", Alt: "Harbor Hotels website"},
					{URL: "/assets/placeholder-work-3.png", Title: "App — Trailhead", Alt: "Trailhead app design"},
				},
			})},
			{Type: models.TypeTestimonials, Order: 3, Config: mustRaw(models.TestimonialsConfig{
				Title: "Client Love",
				Testimonials: []models.TestimonialItem{
					{Name: "Ana Duarte", Role: "Founder", Company: "Atlas Coffee", Rating: 5,
						Text: "They understood our brand better than we did. The rebrand tripled our engagement."},
				},
			})},
			{Type: models.TypeContact, Order: 4, Config: mustRaw(models.ContactConfig{
				Title:       "Let's Talk",
				Description: "Tell us about your project and we'll get back within a day.",
				Email:       "hello@youragency.example",
				ShowForm:    true,
			})},
			{Type: models.TypeFooter, Order: 5, Config: mustRaw(models.FooterConfig{
				Tagline:   "Crafted with care, shipped with pride.",
				Copyright: "© 2026 Your Agency.",
				Columns: []models.FooterColumn{
					{Title: "Studio", Links: []models.FooterLink{{Text: "Work", Link: "#gallery"}, {Text: "Contact", Link: "#contact"}}},
				},
			})},
		},
	},

	"ecommerce-store": {
		ID:          "ecommerce-store",
		Name:        "E-Commerce Store",
		Description: "Product-focused layout with strong calls to action and a newsletter signup.",
		Category:    "ecommerce",
		Theme:       "elegant",
		components: []models.Component{
			{Type: models.TypeHero, Order: 0, Config: mustRaw(models.HeroConfig{
				Title:       "Summer Collection 2026",
				Subtitle:    "Free shipping on orders over $50",
				Description: "Thoughtfully made pieces that last season after season.",
				PrimaryCTA:  &models.CTAButton{Text: "Shop Now", Link: "#features"},
				Background:  models.BackgroundConfig{Type: models.BackgroundSolid, Color: "#fffbf5"},
			})},
			{Type: models.TypeFeatures, Order: 1, Config: mustRaw(models.FeaturesConfig{
				Title:   "Why Shop With Us",
				Columns: 3,
				Features: []models.FeatureItem{
					{Title: "Free Returns", Description: "30-day hassle-free returns on every order.", Icon: "📦"},
					{Title: "Secure Checkout", Description: "Your payment details are always protected.", Icon: "🔒"},
					{Title: "Sustainable", Description: "Responsibly sourced materials, carbon-neutral shipping.", Icon: "🌱"},
				},
			})},
			{Type: models.TypeTestimonials, Order: 2, Config: mustRaw(models.TestimonialsConfig{
				Title: "What Customers Say",
				Testimonials: []models.TestimonialItem{
					{Name: "Priya Nair", Rating: 5, Text: "Beautiful quality, arrived in two days. Already ordered again."},
					{Name: "Tom Eriksen", Rating: 4, Text: "Great fit and the returns process was painless."},
				},
			})},
			{Type: models.TypeNewsletter, Order: 3, Config: mustRaw(models.NewsletterConfig{
				Title:       "Get 10% Off Your First Order",
				Description: "Join our list for early access to drops and exclusive offers.",
				ButtonText:  "Sign Up",
			})},
			{Type: models.TypeFooter, Order: 4, Config: mustRaw(models.FooterConfig{
				Copyright: "© 2026 Your Store.",
				Columns: []models.FooterColumn{
					{Title: "Shop", Links: []models.FooterLink{{Text: "New Arrivals", Link: "/new"}, {Text: "Best Sellers", Link: "/best"}}},
					{Title: "Help", Links: []models.FooterLink{{Text: "Shipping", Link: "/shipping"}, {Text: "Returns", Link: "/returns"}}},
				},
			})},
		},
	},

	"minimal-portfolio": {
		ID:          "minimal-portfolio",
		Name:        "Minimal Portfolio",
		Description: "Quiet single-page portfolio: intro, work gallery, about, and contact.",
		Category:    "portfolio",
		Theme:       "dark",
		components: []models.Component{
			{Type: models.TypeHero, Order: 0, Config: mustRaw(models.HeroConfig{
				Title:       "Jordan Reyes",
				Subtitle:    "Photographer & Art Director",
				Description: "Selected work from a decade of shooting people, places, and the space between.",
				Alignment:   "left",
				Background:  models.BackgroundConfig{Type: models.BackgroundSolid, Color: "#0f172a"},
			})},
			{Type: models.TypeGallery, Order: 1, Config: mustRaw(models.GalleryConfig{
				Columns: 2,
				Images: []models.GalleryImage{
					{URL: "/assets/placeholder-portfolio-1.png", Title: "Coastline, 2025", Alt: "Coastline photograph"},
					{URL: "/assets/placeholder-portfolio-2.png", Title: "Studio Series", Alt: "Studio portrait"},
					{URL: "/assets/placeholder-portfolio-3.png", Title: "City at Dusk", Alt: "City photograph at dusk"},
					{URL: "/assets/placeholder-portfolio-4.png", Title: "Quiet Rooms", Alt: "Interior photograph"},
				},
			})},
			{Type: models.TypeContent, Order: 2, Config: mustRaw(models.ContentConfig{
				Title:  "About",
				Format: "markdown",
				Width:  "narrow",
				Body:   "Based between Lisbon and New York. Clients include magazines, labels, and small studios doing good work.\n\nAvailable for commissions from **March 2026**.",
			})},
			{Type: models.TypeContact, Order: 3, Config: mustRaw(models.ContactConfig{
				Title: "Get in Touch",
				Email: "studio@jordanreyes.example",
			})},
			{Type: models.TypeFooter, Order: 4, Config: mustRaw(models.FooterConfig{
				Copyright: "© 2026 Jordan Reyes.",
			})},
		},
	},
}
