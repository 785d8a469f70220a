package library

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// matchThreshold is the minimum similarity for a track to appear in search
// results.
const matchThreshold = 0.5

// Match is one search hit with its similarity score.
type Match struct {
	Track Track
	Score float64
}

// Search ranks tracks against a free-text query using Jaro-Winkler
// similarity over normalized titles. A query contained verbatim in the
// normalized title or artist scores as a near-exact hit.
func Search(query string, tracks []Track) []Match {
	cleaned := cleanTitle(query)
	if cleaned == "" {
		return nil
	}

	var matches []Match
	for _, track := range tracks {
		title := cleanTitle(track.Title)
		combined := cleanTitle(track.Artist + " " + track.Title)

		score := float64(edlib.JaroWinklerSimilarity(cleaned, title))
		if s := float64(edlib.JaroWinklerSimilarity(cleaned, combined)); s > score {
			score = s
		}
		if strings.Contains(title, cleaned) || strings.Contains(combined, cleaned) {
			if score < 0.95 {
				score = 0.95
			}
		}

		if score >= matchThreshold {
			matches = append(matches, Match{Track: track, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// cleanTitle normalizes a title for matching: lowercase, accents stripped,
// punctuation removed, whitespace collapsed.
func cleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
