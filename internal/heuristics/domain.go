package heuristics

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const generalConfidence = 0.5

// DetectDomain scores the prompt against every domain's keywords and returns the
// best match with a confidence in [0,1]. Prompts matching no keyword fall back to
// the general domain.
func DetectDomain(prompt string) (string, float64) {
	lowered := foldText(prompt)

	best := ""
	bestCount := 0
	for _, d := range domains {
		count := 0
		for _, kw := range d.Keywords {
			if strings.Contains(lowered, kw) {
				count++
			}
		}
		// strictly greater keeps the first domain on ties
		if count > bestCount {
			best = d.Name
			bestCount = count
		}
	}

	if bestCount == 0 {
		return DomainGeneral, generalConfidence
	}
	return best, math.Min(float64(bestCount)/3, 1.0)
}

// DomainLabel converts a domain identifier such as "data_analysis" into a
// display label ("Data Analysis").
func DomainLabel(domain string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(domain, "_", " "))
}
