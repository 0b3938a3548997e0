// Package web renders the dashboard page and its price card.
package web

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"houseprice/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageTemplate     = "page.html"
	estimateTemplate = "estimate.html"
)

// PageData is everything the page template reads.
type PageData struct {
	Title string
	// BannerHTML is operator-provided markup, sanitized before rendering.
	BannerHTML string
	// Background is a data: URI, or empty for no image.
	Background string
	Options    types.OptionsResponse
	Selection  types.Selection
	Estimate   *types.EstimateResponse
	Error      string
}

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	page     *pongo2.Template
	estimate *pongo2.Template
	policy   *bluemonday.Policy
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	set := pongo2.NewSet("houseprice", pongo2.NewFSLoader(sub))
	page, err := set.FromFile(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageTemplate, err)
	}
	est, err := set.FromFile(estimateTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", estimateTemplate, err)
	}
	return &Renderer{page: page, estimate: est, policy: bannerSanitizer()}, nil
}

// RenderPage writes the full dashboard.
func (r *Renderer) RenderPage(w io.Writer, data PageData) error {
	data.BannerHTML = r.SanitizeBanner(data.BannerHTML)
	return r.page.ExecuteWriter(pongo2.Context{"page": data}, w)
}

// RenderEstimate writes only the price card.
func (r *Renderer) RenderEstimate(w io.Writer, data PageData) error {
	return r.estimate.ExecuteWriter(pongo2.Context{"page": data}, w)
}

// SanitizeBanner strips anything but basic formatting from operator markup.
func (r *Renderer) SanitizeBanner(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(r.policy.Sanitize(trimmed))
}

var (
	bannerPolicyOnce sync.Once
	bannerPolicy     *bluemonday.Policy
)

func bannerSanitizer() *bluemonday.Policy {
	bannerPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "p", "br", "span", "small")
		p.AllowStandardURLs()
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		bannerPolicy = p
	})
	return bannerPolicy
}
