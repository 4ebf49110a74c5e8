package announcement

import (
	"net/url"
	"strings"
)

// Platform describes a learning platform the frontend can link out to.
// Search holds a URL template with a {q} placeholder.
type Platform struct {
	Name               string `json:"name"`
	Home               string `json:"home"`
	Search             string `json:"-"`
	Category           string `json:"category"`
	Description        string `json:"description"`
	CostModel          string `json:"cost_model"`
	OffersCertificates bool   `json:"offers_certificates"`
}

// SearchURL fills the {q} placeholder with the escaped query. A blank
// query links to the platform home instead.
func (p Platform) SearchURL(q string) string {
	if strings.TrimSpace(q) == "" {
		return p.Home
	}
	return strings.Replace(p.Search, "{q}", url.QueryEscape(q), 1)
}

var Platforms = []Platform{
	{
		Name:               "Class Central",
		Home:               "https://www.classcentral.com/",
		Search:             "https://www.classcentral.com/search?q={q}",
		Category:           "Aggregator",
		Description:        "Search engine for online courses across many providers.",
		CostModel:          "free",
		OffersCertificates: false,
	},
	{
		Name:               "freeCodeCamp",
		Home:               "https://www.freecodecamp.org/",
		Search:             "https://www.freecodecamp.org/learn/?q={q}",
		Category:           "Nonprofit / Web Dev",
		Description:        "Fully free coding curriculum with project-based certifications.",
		CostModel:          "free",
		OffersCertificates: true,
	},
	{
		Name:               "Khan Academy",
		Home:               "https://www.khanacademy.org/",
		Search:             "https://www.khanacademy.org/search?page_search_query={q}",
		Category:           "Nonprofit / K-12 to College",
		Description:        "Free learning for math, science, computing, and more.",
		CostModel:          "free",
		OffersCertificates: false,
	},
	{
		Name:               "Alison",
		Home:               "https://alison.com/",
		Search:             "https://alison.com/search/results?query={q}",
		Category:           "MOOC",
		Description:        "Large catalog of free courses; optional paid certificates.",
		CostModel:          "freemium",
		OffersCertificates: true,
	},
	{
		Name:               "Coursera",
		Home:               "https://www.coursera.org/",
		Search:             "https://www.coursera.org/search?query={q}",
		Category:           "MOOC / University",
		Description:        "University-backed courses and professional certificates.",
		CostModel:          "mixed",
		OffersCertificates: true,
	},
	{
		Name:               "edX",
		Home:               "https://www.edx.org/",
		Search:             "https://www.edx.org/search?q={q}",
		Category:           "MOOC / University",
		Description:        "Courses from universities; MicroBachelors/MicroMasters.",
		CostModel:          "mixed",
		OffersCertificates: true,
	},
	{
		Name:               "FutureLearn",
		Home:               "https://www.futurelearn.com/",
		Search:             "https://www.futurelearn.com/courses?query={q}",
		Category:           "MOOC",
		Description:        "Short courses and ExpertTracks from universities/organizations.",
		CostModel:          "freemium",
		OffersCertificates: true,
	},
	{
		Name:               "Udemy",
		Home:               "https://www.udemy.com/",
		Search:             "https://www.udemy.com/courses/search/?q={q}",
		Category:           "Marketplace",
		Description:        "Instructor-created courses across all topics; frequent discounts.",
		CostModel:          "paid",
		OffersCertificates: true,
	},
	{
		Name:               "Udacity",
		Home:               "https://www.udacity.com/",
		Search:             "https://www.udacity.com/courses/all?search={q}",
		Category:           "Tech / Nanodegrees",
		Description:        "Career-focused Nanodegree programs in tech fields.",
		CostModel:          "paid",
		OffersCertificates: true,
	},
	{
		Name:               "Pluralsight",
		Home:               "https://www.pluralsight.com/",
		Search:             "https://www.pluralsight.com/search?q={q}",
		Category:           "Tech",
		Description:        "Tech skills with paths and assessments; strong cert-prep.",
		CostModel:          "subscription",
		OffersCertificates: true,
	},
	{
		Name:               "Codecademy",
		Home:               "https://www.codecademy.com/",
		Search:             "https://www.codecademy.com/search?query={q}",
		Category:           "Tech",
		Description:        "Interactive coding lessons; Pro offers paths/certificates.",
		CostModel:          "freemium",
		OffersCertificates: true,
	},
	{
		Name:               "LinkedIn Learning",
		Home:               "https://www.linkedin.com/learning/",
		Search:             "https://www.linkedin.com/learning/search?keywords={q}",
		Category:           "Professional",
		Description:        "Business, creative, and tech courses; add certs to profile.",
		CostModel:          "subscription",
		OffersCertificates: true,
	},
	{
		Name:               "Skillshare",
		Home:               "https://www.skillshare.com/",
		Search:             "https://www.skillshare.com/search?query={q}",
		Category:           "Creative / Marketplace",
		Description:        "Creative and practical classes by creators.",
		CostModel:          "subscription",
		OffersCertificates: false,
	},
	{
		Name:               "DataCamp",
		Home:               "https://www.datacamp.com/",
		Search:             "https://www.datacamp.com/search?q={q}",
		Category:           "Data",
		Description:        "Interactive data science and analytics learning.",
		CostModel:          "subscription",
		OffersCertificates: true,
	},
	{
		Name:               "Microsoft Learn",
		Home:               "https://learn.microsoft.com/",
		Search:             "https://learn.microsoft.com/search/?terms={q}",
		Category:           "Vendor / Cloud",
		Description:        "Free learning paths with badges; Microsoft cert-prep.",
		CostModel:          "free",
		OffersCertificates: true,
	},
	{
		Name:               "MIT OpenCourseWare",
		Home:               "https://ocw.mit.edu/",
		Search:             "https://ocw.mit.edu/search/?q={q}",
		Category:           "University / Open",
		Description:        "Free MIT course materials; no enrollment or certs.",
		CostModel:          "free",
		OffersCertificates: false,
	},
	{
		Name:               "OpenClassrooms",
		Home:               "https://openclassrooms.com/",
		Search:             "https://openclassrooms.com/en/search?q={q}",
		Category:           "Career / Mentor-guided",
		Description:        "Mentor-guided paths with job-ready projects and diplomas.",
		CostModel:          "subscription",
		OffersCertificates: true,
	},
}

// SearchPlatforms filters the catalog by cost model and certificate
// availability and resolves each search link for the query.
func SearchPlatforms(q, cost, certs string) []PlatformResult {
	cost = strings.ToLower(strings.TrimSpace(cost))
	certs = strings.ToLower(strings.TrimSpace(certs))

	out := make([]PlatformResult, 0, len(Platforms))
	for _, p := range Platforms {
		if cost != "" && strings.ToLower(p.CostModel) != cost {
			continue
		}
		switch certs {
		case "yes", "true", "1":
			if !p.OffersCertificates {
				continue
			}
		case "no", "false", "0":
			if p.OffersCertificates {
				continue
			}
		}

		out = append(out, PlatformResult{
			Platform:  p,
			SearchURL: p.SearchURL(q),
		})
	}
	return out
}
