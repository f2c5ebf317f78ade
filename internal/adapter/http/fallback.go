package httpadapter

import "digigrow-web/internal/core/domain"

func fallbackService(order int, name, slug, icon, short string, price float64, features ...string) domain.Service {
	return domain.Service{
		ID:                int64(order),
		Name:              name,
		Slug:              slug,
		Icon:              icon,
		ShortDescription:  short,
		Features:          features,
		PriceStartingFrom: price,
		DisplayOrder:      order,
		Active:            true,
	}
}

func fallbackTestimonial(id int64, author, role, company, initials, content string) domain.Testimonial {
	return domain.Testimonial{
		ID:             id,
		AuthorName:     author,
		AuthorRole:     role,
		CompanyName:    company,
		Content:        content,
		Rating:         5,
		AvatarInitials: initials,
		Featured:       true,
		Active:         true,
		DisplayOrder:   int(id),
	}
}

// fallbackServices is shown when the services fetch fails or is empty.
var fallbackServices = []domain.Service{
	fallbackService(1, "Paid Advertising", "paid-advertising", "🎯",
		"Maximize ROI with precision-targeted ad campaigns", 15000,
		"Google Ads (Search, Display, Shopping)", "Facebook & Instagram Ads", "LinkedIn Advertising", "YouTube Video Ads", "Remarketing Campaigns"),
	fallbackService(2, "Social Media Marketing", "social-media-marketing", "📱",
		"Grow your brand across all social platforms", 12000,
		"Content Strategy & Planning", "Social Media Management", "Community Engagement", "Influencer Partnerships", "Analytics & Reporting"),
	fallbackService(3, "Search Engine Optimization", "seo", "🔍",
		"Dominate search results in Delhi & beyond", 18000,
		"Technical SEO Audit", "On-Page Optimization", "Link Building Strategy", "Local SEO - Delhi Focus", "Content Optimization"),
	fallbackService(4, "Content Marketing", "content-marketing", "✍️",
		"Tell your brand story with impactful content", 10000,
		"Blog Writing & Publishing", "Video Content Production", "Infographic Design", "Email Newsletter Creation", "Content Distribution"),
	fallbackService(5, "Analytics & Reporting", "analytics-reporting", "📊",
		"Data-driven decisions for maximum growth", 8000,
		"Google Analytics Setup", "Conversion Tracking", "Custom Dashboard Creation", "Monthly Performance Reports", "ROI Analysis"),
	fallbackService(6, "Website Development", "website-development", "🌐",
		"Stunning websites that convert visitors to leads", 25000,
		"Responsive Web Design", "Landing Page Creation", "E-commerce Solutions", "Website Speed Optimization", "CMS Integration"),
}

// fallbackTestimonials is shown when the featured testimonials fetch fails
// or is empty.
var fallbackTestimonials = []domain.Testimonial{
	fallbackTestimonial(1, "Rajesh Kumar", "CEO", "TechSolutions Delhi", "RK",
		"DigiGrow transformed our online presence. Within 3 months, we saw a 300% increase in qualified leads through Google Ads."),
	fallbackTestimonial(2, "Priya Sharma", "Founder", "FashionHub", "PS",
		"Our Instagram following grew from 2K to 50K in 6 months, and sales from social media increased by 400%!"),
	fallbackTestimonial(3, "Amit Malhotra", "Director", "HomeServe India", "AM",
		"Their SEO expertise helped us rank #1 for our most important keywords in Delhi. Organic traffic up by 250%."),
}
