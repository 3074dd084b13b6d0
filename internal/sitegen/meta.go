package sitegen

import (
	"strings"

	"vertexit-site/internal/domain"
)

// PageMeta carries per-page SEO and OpenGraph values.
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"` // canonical + og:url
	OGType      string `json:"ogType"`
}

// MetaFor derives a page's metadata from the site settings. pageTitle and
// pageDescription override the site-wide defaults when non-empty.
func MetaFor(s *domain.Settings, baseURL, pagePath, pageTitle, pageDescription string) PageMeta {
	siteTitle := ""
	siteDescription := ""
	if s != nil {
		siteTitle = s.MetaTitle
		if siteTitle == "" {
			siteTitle = s.SiteName
		}
		siteDescription = s.MetaDescription
		if siteDescription == "" {
			siteDescription = s.Description
		}
	}

	title := siteTitle
	ogType := "website"
	if pageTitle != "" {
		if siteTitle != "" {
			title = pageTitle + " | " + siteTitle
		} else {
			title = pageTitle
		}
		ogType = "article"
	}
	description := pageDescription
	if description == "" {
		description = siteDescription
	}

	base := strings.TrimSuffix(baseURL, "/")
	pagePath = strings.TrimPrefix(pagePath, "/")
	canonical := base
	if pagePath != "" {
		canonical = base + "/" + pagePath
	}

	return PageMeta{
		Title:       title,
		Description: description,
		URL:         canonical,
		OGType:      ogType,
	}
}
