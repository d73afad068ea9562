// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package catalog holds the fixed titles shown on the browse screen.
package catalog

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Art is a two-color poster placeholder.
type Art struct {
	From string
	To   string
}

type Title struct {
	ID          int
	Name        string
	Rating      string
	Year        string
	Description string
	Art         Art
}

type Row struct {
	Key     string
	Heading string
	Titles  []Title
}

type Billboard struct {
	Name  string
	Blurb string
	Art   Art
}

type LinkSection struct {
	Heading string
	Links   []string
}

var palettes = []Art{
	{From: "#b20710", To: "#221f1f"},
	{From: "#1f3b73", To: "#0b0b0b"},
	{From: "#0f5132", To: "#101010"},
	{From: "#6f42c1", To: "#140a25"},
	{From: "#c9701c", To: "#1a1208"},
	{From: "#127a8a", To: "#06181b"},
}

func art(id int) Art {
	return palettes[(id-1)%len(palettes)]
}

func Hero() Billboard {
	return Billboard{
		Name:  "Stranger Things",
		Blurb: "When a young boy vanishes, a small town uncovers a mystery involving secret experiments, terrifying supernatural forces, and one strange little girl.",
		Art:   Art{From: "#000000", To: "#b20710"},
	}
}

func Rows() []Row {
	rows := []Row{
		{
			Key:     "trending",
			Heading: "Trending Now",
			Titles: []Title{
				{ID: 1, Name: "Stranger Things", Rating: "TV-14", Year: "2023", Description: "A group of kids uncover supernatural mysteries in their small town."},
				{ID: 2, Name: "The Crown", Rating: "TV-MA", Year: "2023", Description: "The reign of Queen Elizabeth II in post-war Britain."},
				{ID: 3, Name: "Ozark", Rating: "TV-MA", Year: "2022", Description: "A financial advisor launders money for a Mexican cartel."},
				{ID: 4, Name: "Bridgerton", Rating: "TV-MA", Year: "2023", Description: "Romance and scandal in Regency-era England."},
				{ID: 5, Name: "The Witcher", Rating: "TV-MA", Year: "2023", Description: "A monster hunter struggles to find his place in a world."},
				{ID: 6, Name: "Money Heist", Rating: "TV-MA", Year: "2021", Description: "A criminal mastermind plans the perfect heist."},
			},
		},
		{
			Key:     "popular",
			Heading: "Popular on Netflix",
			Titles: []Title{
				{ID: 7, Name: "Wednesday", Rating: "TV-14", Year: "2023", Description: "Wednesday Addams navigates her years as a student."},
				{ID: 8, Name: "You", Rating: "TV-MA", Year: "2023", Description: "A charming bookstore manager's obsessive love."},
				{ID: 9, Name: "Squid Game", Rating: "TV-MA", Year: "2021", Description: "Players compete in childhood games for a deadly prize."},
				{ID: 10, Name: "Dark", Rating: "TV-MA", Year: "2020", Description: "Time travel and family secrets in a German town."},
				{ID: 11, Name: "Lupin", Rating: "TV-MA", Year: "2023", Description: "A master thief inspired by classic literature."},
				{ID: 12, Name: "Elite", Rating: "TV-MA", Year: "2023", Description: "Class conflict at an exclusive private school."},
			},
		},
		{
			Key:     "new",
			Heading: "New Releases",
			Titles: []Title{
				{ID: 13, Name: "Glass Onion", Rating: "PG-13", Year: "2023", Description: "Detective Benoit Blanc solves a new mystery."},
				{ID: 14, Name: "The Gray Man", Rating: "PG-13", Year: "2023", Description: "A CIA operative becomes a target."},
				{ID: 15, Name: "Red Notice", Rating: "PG-13", Year: "2023", Description: "An FBI profiler partners with art thieves."},
				{ID: 16, Name: "Extraction 2", Rating: "R", Year: "2023", Description: "A black ops mercenary takes on a new mission."},
				{ID: 17, Name: "The Adam Project", Rating: "PG-13", Year: "2023", Description: "A time-traveling pilot teams up with his younger self."},
				{ID: 18, Name: "Don't Look Up", Rating: "R", Year: "2022", Description: "Scientists try to warn humanity of an approaching comet."},
			},
		},
	}
	for r := range rows {
		for i := range rows[r].Titles {
			rows[r].Titles[i].Art = art(rows[r].Titles[i].ID)
		}
	}
	return rows
}

func NavLinks() []string {
	return []string{"Home", "TV Shows", "Movies", "New & Popular", "My List"}
}

func Footer() []LinkSection {
	return []LinkSection{
		{Heading: "Company", Links: []string{"About Netflix", "Jobs", "Press"}},
		{Heading: "Support", Links: []string{"Help Center", "Contact Us", "Gift Cards"}},
		{Heading: "Legal", Links: []string{"Privacy", "Terms of Use", "Cookie Preferences"}},
		{Heading: "Account", Links: []string{"Manage Profiles", "Account", "Redeem Gift Cards"}},
	}
}

// Search keeps the titles whose name or description contains query, ignoring
// case and diacritics. Rows left without titles are dropped.
func Search(rows []Row, query string) []Row {
	q := fold(query)
	if q == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		var hits []Title
		for _, t := range row.Titles {
			if strings.Contains(fold(t.Name), q) || strings.Contains(fold(t.Description), q) {
				hits = append(hits, t)
			}
		}
		if len(hits) > 0 {
			row.Titles = hits
			out = append(out, row)
		}
	}
	return out
}

func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(unidecode.Unidecode(s)), " "))
}
