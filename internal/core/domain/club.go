package domain

import "strings"

// Club identifies one student club. Each club owns an isolated announcement
// namespace: its own route group, its own collection, its own failure domain.
type Club string

const (
	ClubIET  Club = "iet"
	ClubIEEE Club = "ieee"
	ClubACM  Club = "acm"
	ClubIE   Club = "ie"
	ClubISTE Club = "iste"
)

// Clubs returns every club namespace the portal serves. Route registration,
// collection setup, and the catalog all iterate this slice, so adding a club
// is a one-line change here.
func Clubs() []Club {
	return []Club{ClubIET, ClubIEEE, ClubACM, ClubIE, ClubISTE}
}

// ParseClub resolves a path segment to a known club namespace.
func ParseClub(s string) (Club, error) {
	c := Club(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Clubs() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownClub
}

// CatalogEntry describes a club for the public catalog endpoint.
type CatalogEntry struct {
	ID          Club   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// Catalog returns the static club directory shown on the portal landing page.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			ID:          ClubIET,
			Name:        "Institution of Engineering and Technology",
			Description: "Connect with industry leaders and gain access to exclusive resources and events with IET.",
			Website:     "https://iet.nitk.ac.in/",
		},
		{
			ID:          ClubIEEE,
			Name:        "Institute of Electrical and Electronics Engineers",
			Description: "Join the world's largest technical professional organization dedicated to advancing technology.",
			Website:     "https://ieee.nitk.ac.in/",
		},
		{
			ID:          ClubACM,
			Name:        "Association for Computing Machinery",
			Description: "Be part of the premier organization for computing professionals worldwide.",
			Website:     "https://nitk.acm.org/#/",
		},
		{
			ID:          ClubIE,
			Name:        "Institution of Engineers",
			Description: "Develop your professional skills through workshops, competitions, and networking events.",
			Website:     "https://in.linkedin.com/company/ienitk",
		},
		{
			ID:          ClubISTE,
			Name:        "Indian Society for Technical Education",
			Description: "Enhance your technical knowledge and stay updated with the latest industry trends.",
			Website:     "https://iste.nitk.ac.in/#/",
		},
	}
}
