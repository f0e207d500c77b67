// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quality

import "strings"

// prestigiousInstitutions holds lowercased canonical names of
// institutions that contribute to the prestige component of the
// quality score.
var prestigiousInstitutions = map[string]struct{}{
	// Tech companies
	"openai":       {},
	"microsoft":    {},
	"google":       {},
	"meta":         {},
	"apple":        {},
	"amazon":       {},
	"nvidia":       {},
	"intel":        {},
	"ibm":          {},
	"deepmind":     {},
	"anthropic":    {},
	"cohere":       {},
	"hugging face": {},
	"stability ai": {},
	"midjourney":   {},

	// Universities
	"stanford":                {},
	"mit":                     {},
	"harvard":                 {},
	"berkeley":                {},
	"cmu":                     {},
	"princeton":               {},
	"yale":                    {},
	"columbia":                {},
	"university of oxford":    {},
	"university of cambridge": {},
	"tsinghua":                {},

	// Other notable
	"netflix":    {},
	"spotify":    {},
	"uber":       {},
	"lyft":       {},
	"airbnb":     {},
	"salesforce": {},
	"adobe":      {},
	"autodesk":   {},
}

// institutionAliases maps common full names and lab variants to their
// canonical entries above.
var institutionAliases = map[string]string{
	"stanford university":                "stanford",
	"massachusetts institute of technology": "mit",
	"harvard university":                 "harvard",
	"university of california berkeley":  "berkeley",
	"carnegie mellon university":         "cmu",
	"princeton university":               "princeton",
	"yale university":                    "yale",
	"columbia university":                "columbia",
	"university of toronto":              "university of toronto",
	"tsinghua university":                "tsinghua",
	"national university of singapore":   "nus",
	"google research":                    "google",
	"microsoft research":                 "microsoft",
	"intel labs":                         "intel",
	"nvidia research":                    "nvidia",
	"meta ai research":                   "meta",
	"apple machine learning":             "apple",
	"amazon web services":                "amazon",
	"netflix research":                   "netflix",
	"spotify research":                   "spotify",
	"uber ai":                            "uber",
	"lyft level 5":                       "lyft",
	"salesforce research":                "salesforce",
	"adobe research":                     "adobe",
	"airbnb data science":                "airbnb",
	"autodesk research":                  "autodesk",
}

// isPrestigious reports whether an institution name matches the
// prestige set, an alias, or contains/is contained by a known name.
func isPrestigious(institution string) bool {
	name := strings.ToLower(strings.TrimSpace(institution))
	if name == "" {
		return false
	}
	if _, ok := prestigiousInstitutions[name]; ok {
		return true
	}
	if _, ok := institutionAliases[name]; ok {
		return true
	}
	for known := range prestigiousInstitutions {
		if strings.Contains(name, known) || strings.Contains(known, name) {
			return true
		}
	}
	return false
}
