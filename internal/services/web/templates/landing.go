package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/taskflow/internal/platform/branding"
	"github.com/louisbranch/taskflow/internal/platform/icons"
)

// LandingLink is a labelled destination on the landing page.
type LandingLink struct {
	Label string
	Href  string
}

// LandingFeature is one card in the features grid.
type LandingFeature struct {
	Icon        icons.ID
	Title       string
	Description string
}

// LandingTestimonial is one customer quote.
type LandingTestimonial struct {
	Quote    string
	Author   string
	Role     string
	ImageURL string
}

// LandingLinkGroup is one footer column.
type LandingLinkGroup struct {
	Title string
	Links []LandingLink
}

// LandingView holds the marketing copy of the landing page.
type LandingView struct {
	HeadlineLead   string
	HeadlineAccent string
	Tagline        string
	HeroPrimary    LandingLink
	HeroSecondary  string

	FeaturesTitle    string
	FeaturesSubtitle string
	Features         []LandingFeature

	BenefitsTitle    string
	Benefits         []string
	BenefitsAction   string
	BenefitsImageURL string
	BenefitsImageAlt string

	TestimonialsTitle    string
	TestimonialsSubtitle string
	Testimonials         []LandingTestimonial

	CTATitle     string
	CTASubtitle  string
	CTAPrimary   LandingLink
	CTASecondary string

	FooterGroups []LandingLinkGroup
	Year         int
}

// LandingPage renders the public marketing page.
func LandingPage(view LandingView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<div class="landing">`)
		renderLandingHero(ctx, h, view, loc)
		renderLandingFeatures(ctx, h, view, loc)
		renderLandingBenefits(ctx, h, view, loc)
		renderLandingTestimonials(h, view, loc)
		renderLandingCTA(ctx, h, view, loc)
		renderLandingFooter(ctx, h, view, loc)
		h.raw(`</div>`)
	})
}

func renderLandingHero(ctx context.Context, h *htmlWriter, view LandingView, loc Localizer) {
	h.raw(`<section class="landing-hero" id="hero"><h1>`)
	h.text(T(loc, view.HeadlineLead))
	h.raw(` <span class="gradient-text">`)
	h.text(T(loc, view.HeadlineAccent))
	h.raw(`</span></h1><p class="landing-tagline">`)
	h.text(T(loc, view.Tagline))
	h.raw(`</p><div class="landing-actions">`)
	renderPrimaryLink(ctx, h, view.HeroPrimary, "button button-lg", loc)
	h.raw(`<button type="button" class="button button-lg button-outline">`)
	h.text(T(loc, view.HeroSecondary))
	h.raw(`</button></div></section>`)
}

func renderLandingFeatures(ctx context.Context, h *htmlWriter, view LandingView, loc Localizer) {
	h.raw(`<section class="landing-features muted-band" id="features"><header class="landing-section-header"><h2>`)
	h.text(T(loc, view.FeaturesTitle))
	h.raw(`</h2><p>`)
	h.text(T(loc, view.FeaturesSubtitle))
	h.raw(`</p></header><div class="card-grid">`)
	for _, feature := range view.Features {
		h.raw(`<article class="card feature-card"><div class="feature-icon">`)
		h.render(ctx, Icon(feature.Icon, ""))
		h.raw(`</div><h3>`)
		h.text(T(loc, feature.Title))
		h.raw(`</h3><p>`)
		h.text(T(loc, feature.Description))
		h.raw(`</p></article>`)
	}
	h.raw(`</div></section>`)
}

func renderLandingBenefits(ctx context.Context, h *htmlWriter, view LandingView, loc Localizer) {
	h.raw(`<section class="landing-benefits" id="benefits"><div class="benefits-copy"><h2>`)
	h.text(T(loc, view.BenefitsTitle))
	h.raw(`</h2><ul class="benefit-list">`)
	for _, benefit := range view.Benefits {
		h.raw(`<li>`)
		h.render(ctx, Icon(icons.Benefit, "benefit-icon"))
		h.raw(`<span>`)
		h.text(T(loc, benefit))
		h.raw(`</span></li>`)
	}
	h.raw(`</ul><button type="button" class="button button-lg">`)
	h.text(T(loc, view.BenefitsAction))
	h.raw(`</button></div>`)
	if view.BenefitsImageURL != "" {
		h.raw(`<div class="benefits-media"><img`)
		h.attr("src", view.BenefitsImageURL)
		h.attr("alt", view.BenefitsImageAlt)
		h.raw(` loading="lazy"></div>`)
	}
	h.raw(`</section>`)
}

func renderLandingTestimonials(h *htmlWriter, view LandingView, loc Localizer) {
	h.raw(`<section class="landing-testimonials muted-band" id="testimonials"><header class="landing-section-header"><h2>`)
	h.text(T(loc, view.TestimonialsTitle))
	h.raw(`</h2><p>`)
	h.text(T(loc, view.TestimonialsSubtitle))
	h.raw(`</p></header><div class="card-grid">`)
	for _, testimonial := range view.Testimonials {
		h.raw(`<figure class="card testimonial-card"><figcaption class="testimonial-author"><img class="avatar-image"`)
		h.attr("src", testimonial.ImageURL)
		h.attr("alt", testimonial.Author)
		h.raw(` loading="lazy"><span><strong>`)
		h.text(testimonial.Author)
		h.raw(`</strong><small>`)
		h.text(testimonial.Role)
		h.raw(`</small></span></figcaption><blockquote>`)
		h.text(T(loc, testimonial.Quote))
		h.raw(`</blockquote></figure>`)
	}
	h.raw(`</div></section>`)
}

func renderLandingCTA(ctx context.Context, h *htmlWriter, view LandingView, loc Localizer) {
	h.raw(`<section class="landing-cta" id="cta"><div class="cta-panel"><h2>`)
	h.text(T(loc, view.CTATitle))
	h.raw(`</h2><p>`)
	h.text(T(loc, view.CTASubtitle))
	h.raw(`</p><div class="landing-actions">`)
	renderPrimaryLink(ctx, h, view.CTAPrimary, "button button-lg button-secondary", loc)
	h.raw(`<button type="button" class="button button-lg button-ghost">`)
	h.text(T(loc, view.CTASecondary))
	h.raw(`</button></div></div></section>`)
}

func renderLandingFooter(ctx context.Context, h *htmlWriter, view LandingView, loc Localizer) {
	h.raw(`<footer class="landing-footer"><div class="footer-groups">`)
	for _, group := range view.FooterGroups {
		h.raw(`<div class="footer-group"><h3>`)
		h.text(T(loc, group.Title))
		h.raw(`</h3><ul>`)
		for _, link := range group.Links {
			h.raw(`<li><a`)
			h.attr("href", link.Href)
			h.raw(`>`)
			h.text(T(loc, link.Label))
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></div>`)
	}
	h.raw(`</div><div class="footer-bottom"><span class="footer-brand">`)
	h.render(ctx, Icon(icons.Brand, "footer-brand-icon"))
	h.raw(`<span>`)
	h.text(branding.AppName)
	h.raw(`</span></span><p class="footer-copyright">© `)
	h.text(strconv.Itoa(view.Year))
	h.raw(` `)
	h.text(branding.AppName)
	h.raw(`. `)
	h.text(T(loc, "All rights reserved."))
	h.raw(`</p></div></footer>`)
}

func renderPrimaryLink(ctx context.Context, h *htmlWriter, link LandingLink, class string, loc Localizer) {
	h.raw(`<a`)
	h.attr("class", class)
	h.attr("href", link.Href)
	h.raw(`>`)
	h.text(T(loc, link.Label))
	h.render(ctx, Icon(icons.ArrowRight, "button-icon"))
	h.raw(`</a>`)
}
