package matching

import "strings"

// Place names are user-typed and inconsistently formatted, so region
// comparison is deliberately lenient: false positives are preferred over
// starving a sparse provider pool.

// adminStopwords are administrative-unit and country tokens stripped from
// free-text place names before comparison.
var adminStopwords = []string{
	"state", "district", "city", "town", "village", "area",
	"sector", "block", "ward", "india", "bharat",
}

// citySuffixes are common trailing fragments stripped before fuzzy
// city comparison.
var citySuffixes = []string{"city", "district", "town", "nagar", "pur", "bad", "ganj"}

// stateKeywords is a fixed gazetteer of Indian states and major cities used
// for the state-level eligibility fallback.
var stateKeywords = []string{
	"andhra pradesh", "arunachal pradesh", "assam", "bihar", "chhattisgarh",
	"goa", "gujarat", "haryana", "himachal pradesh", "jharkhand",
	"karnataka", "kerala", "madhya pradesh", "maharashtra", "manipur",
	"meghalaya", "mizoram", "nagaland", "odisha", "punjab",
	"rajasthan", "sikkim", "tamil nadu", "telangana", "tripura",
	"uttar pradesh", "uttarakhand", "west bengal", "delhi", "mumbai",
	"bangalore", "chennai", "kolkata", "hyderabad", "pune",
}

// ExtractCityName normalizes a free-text location into a comparable city
// token: keeps only the text before the first comma, removes stopword
// tokens case-insensitively, collapses whitespace and trims.
func ExtractCityName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}

	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		stop := false
		for _, sw := range adminStopwords {
			if f == sw {
				stop = true
				break
			}
		}
		if !stop {
			kept = append(kept, f)
		}
	}
	s = strings.TrimSpace(strings.Join(kept, " "))

	if i := strings.Index(s, ","); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}

// stripCitySuffixes drops trailing suffix fragments from an already-lowered
// city token.
func stripCitySuffixes(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, suf := range citySuffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suf))
		}
	}
	return s
}

// SameCity reports whether two place descriptors likely refer to the same
// city. After suffix stripping, strings of length >= 3 match on substring
// containment in either direction or an edit distance of at most 2; shorter
// strings must match exactly.
func SameCity(a, b string) bool {
	ca := stripCitySuffixes(a)
	cb := stripCitySuffixes(b)
	if len(ca) >= 3 && len(cb) >= 3 {
		if strings.Contains(ca, cb) || strings.Contains(cb, ca) {
			return true
		}
		return levenshtein(ca, cb) <= 2
	}
	return ca == cb
}

// ExtractStateKeywords returns every gazetteer keyword appearing as a
// substring of the input, in gazetteer order.
func ExtractStateKeywords(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range stateKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// levenshtein computes the classic full-matrix dynamic-programming edit
// distance between two strings.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	n := len(ra)
	m := len(rb)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			d[i][j] = min
		}
	}
	return d[n][m]
}
