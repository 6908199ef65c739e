package landing

import (
	"github.com/louisbranch/taskflow/internal/platform/icons"
	"github.com/louisbranch/taskflow/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/taskflow/internal/services/web/templates"
)

const (
	pageDescription = "TaskFlow helps you streamline your workflow with powerful automation tools, intuitive task management, and real-time analytics."
	benefitsImage   = "https://images.pexels.com/photos/3183150/pexels-photo-3183150.jpeg"
	footerLinkHref  = "#"
)

// content returns the landing copy for year.
func content(year int) webtemplates.LandingView {
	getStarted := routepath.AppSectionPath("tasks")
	return webtemplates.LandingView{
		HeadlineLead:   "Automate Your Tasks,",
		HeadlineAccent: "Amplify Your Productivity",
		Tagline:        pageDescription,
		HeroPrimary:    webtemplates.LandingLink{Label: "Get Started", Href: getStarted},
		HeroSecondary:  "Watch Demo",

		FeaturesTitle:    "Powerful Features",
		FeaturesSubtitle: "Everything you need to manage tasks efficiently",
		Features: []webtemplates.LandingFeature{
			{Icon: icons.Automations, Title: "Smart Automation", Description: "Create custom automation rules to handle repetitive tasks automatically."},
			{Icon: icons.Analytics, Title: "Analytics Dashboard", Description: "Get insights into your productivity with detailed analytics and reports."},
			{Icon: icons.Calendar, Title: "Task Management", Description: "Organize tasks with priorities, due dates, and custom tags."},
			{Icon: icons.Goals, Title: "Goal Tracking", Description: "Set and track goals with milestones and progress indicators."},
			{Icon: icons.Upcoming, Title: "Time Management", Description: "Focus timer and time tracking for enhanced productivity."},
			{Icon: icons.Customize, Title: "Customization", Description: "Customize workflows and views to match your needs."},
		},

		BenefitsTitle: "Why Choose TaskFlow?",
		Benefits: []string{
			"Increase productivity by up to 40%%",
			"Reduce time spent on repetitive tasks",
			"Improve team collaboration",
			"Track progress in real-time",
			"Customize workflows to your needs",
		},
		BenefitsAction:   "Learn More",
		BenefitsImageURL: benefitsImage,
		BenefitsImageAlt: "TaskFlow Dashboard",

		TestimonialsTitle:    "Trusted by Teams Worldwide",
		TestimonialsSubtitle: "See what our customers have to say",
		Testimonials: []webtemplates.LandingTestimonial{
			{
				Quote:    "TaskFlow has transformed how our team manages projects. The automation features are a game-changer.",
				Author:   "Sarah Johnson",
				Role:     "Product Manager at TechCorp",
				ImageURL: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
			},
			{
				Quote:    "The analytics dashboard gives us invaluable insights into our team's productivity and workflow.",
				Author:   "Michael Chen",
				Role:     "CTO at StartupX",
				ImageURL: "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg",
			},
			{
				Quote:    "Simple yet powerful. TaskFlow has everything we need to stay organized and efficient.",
				Author:   "Emily Rodriguez",
				Role:     "Team Lead at DesignCo",
				ImageURL: "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg",
			},
		},

		CTATitle:     "Ready to Boost Your Productivity?",
		CTASubtitle:  "Join thousands of teams already using TaskFlow to streamline their workflow",
		CTAPrimary:   webtemplates.LandingLink{Label: "Get Started for Free", Href: getStarted},
		CTASecondary: "Schedule a Demo",

		FooterGroups: []webtemplates.LandingLinkGroup{
			footerGroup("Product", "Features", "Pricing", "Integrations", "Enterprise"),
			footerGroup("Company", "About", "Blog", "Careers", "Contact"),
			footerGroup("Resources", "Documentation", "Help Center", "API Reference", "Status"),
			footerGroup("Legal", "Privacy", "Terms", "Security", "Cookies"),
		},
		Year: year,
	}
}

func footerGroup(title string, labels ...string) webtemplates.LandingLinkGroup {
	group := webtemplates.LandingLinkGroup{Title: title, Links: make([]webtemplates.LandingLink, 0, len(labels))}
	for _, label := range labels {
		group.Links = append(group.Links, webtemplates.LandingLink{Label: label, Href: footerLinkHref})
	}
	return group
}
