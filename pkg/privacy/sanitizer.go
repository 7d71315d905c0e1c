package privacy

import (
	"regexp"
	"strings"
)

// KVKK personal-data masking. Every public sanitizer is a pure function over
// text: deterministic, idempotent, never failing. Unknown input shapes pass
// through unchanged.
//
// The pipeline is data-driven: an ordered list of rule classes, each class an
// ordered list of (pattern, rewrite) pairs. Order matters: phone masking must
// run before the bare 11-digit identity rule, and identity before the 5-digit
// postal rule, so the longer numeric shapes are consumed first.

type rewriteFunc func(groups []string) string

type rule struct {
	pattern *regexp.Regexp
	rewrite rewriteFunc
}

// maskToken keeps the first rune of a matched name/word component and pads
// the remainder with asterisks, preserving the component's rune length.
func maskToken(s string) string {
	runes := []rune(s)
	if len(runes) <= 1 {
		return s
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1)
}

// Turkish capitalized word, as the original patterns define it. The ASCII
// word boundary around these intentionally mirrors the source behavior for
// words starting or ending with non-ASCII letters.
const capWord = `[A-ZÇĞIİÖŞÜ][a-zçğıiöşü]+`

var nameRules = []rule{
	// Full names: any two adjacent capitalized words. Known to over-match
	// institution names and legal terms; kept as a compatibility contract.
	{
		pattern: regexp.MustCompile(`\b(` + capWord + `)\s+(` + capWord + `)\b`),
		rewrite: func(g []string) string {
			return maskToken(g[1]) + " " + maskToken(g[2])
		},
	},
	// Honorific-suffixed: "Ahmet Bey", "Ayşe Hanım".
	{
		pattern: regexp.MustCompile(`\b(` + capWord + `)\s+(Bey|Hanım|Efendi)\b`),
		rewrite: func(g []string) string {
			return maskToken(g[1]) + " " + g[2]
		},
	},
	// Titled: "Av. Ahmet Yılmaz", "Dr. Ayşe Kaya".
	{
		pattern: regexp.MustCompile(`\b(Av\.|Dr\.|Prof\.|Doç\.|Yrd\. Doç\.)\s+(` + capWord + `)\s+(` + capWord + `)\b`),
		rewrite: func(g []string) string {
			return g[1] + " " + maskToken(g[2]) + " " + maskToken(g[3])
		},
	},
	// Respectful address: "Sayın Ahmet Yılmaz".
	{
		pattern: regexp.MustCompile(`\b(Sayın|Değerli)\s+(` + capWord + `)\s+(` + capWord + `)\b`),
		rewrite: func(g []string) string {
			return g[1] + " " + maskToken(g[2]) + " " + maskToken(g[3])
		},
	},
	// Initialed: "A. Yılmaz".
	{
		pattern: regexp.MustCompile(`\b([A-ZÇĞIİÖŞÜ])\.\s+(` + capWord + `)\b`),
		rewrite: func(g []string) string {
			return g[1] + ". " + maskToken(g[2])
		},
	},
}

// The local part includes '*' so that an already-masked address re-matches as
// a whole and masks to itself. Without it a second pass would re-mask the
// trailing preserved character and break idempotence.
var emailRules = []rule{
	{
		pattern: regexp.MustCompile(`\b([a-zA-Z0-9._%+*-]+)@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`),
		rewrite: func(g []string) string {
			local, domain := g[1], g[2]
			runes := []rune(local)
			var masked string
			if len(runes) > 2 {
				masked = string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
			} else {
				masked = string(runes[0]) + "*"
			}
			return masked + "@" + domain
		},
	},
}

var phoneRules = []rule{
	// 05XX XXX XX XX
	{
		pattern: regexp.MustCompile(`\b(05\d{2})\s*(\d{3})\s*(\d{2})\s*(\d{2})\b`),
		rewrite: func(g []string) string { return g[1] + " *** ** " + g[4] },
	},
	// +90 5XX XXX XX XX
	{
		pattern: regexp.MustCompile(`(\+90)\s*(5\d{2})\s*(\d{3})\s*(\d{2})\s*(\d{2})\b`),
		rewrite: func(g []string) string { return g[1] + " " + g[2] + " *** ** " + g[5] },
	},
	// 5XX XXX XX XX
	{
		pattern: regexp.MustCompile(`\b(5\d{2})\s*(\d{3})\s*(\d{2})\s*(\d{2})\b`),
		rewrite: func(g []string) string { return g[1] + " *** ** " + g[4] },
	},
}

var identityRules = []rule{
	// Bare 11-digit national identity numbers, grouped 3-3-3-2.
	{
		pattern: regexp.MustCompile(`\b(\d{3})(\d{3})(\d{3})(\d{2})\b`),
		rewrite: func(g []string) string { return g[1] + " *** *** " + g[4] },
	},
}

var addressRules = []rule{
	// Street/avenue/neighbourhood names.
	{
		pattern: regexp.MustCompile(`\b(` + capWord + `)\s+(Sokak|Sokağı|Cadde|Caddesi|Mahalle|Mahallesi)\b`),
		rewrite: func(g []string) string { return maskToken(g[1]) + " " + g[2] },
	},
	// Door numbers.
	{
		pattern: regexp.MustCompile(`\b(No\s*:?)\s*(\d+)\b`),
		rewrite: func(g []string) string { return g[1] + " ***" },
	},
	// Postal codes: keep the first two digits.
	{
		pattern: regexp.MustCompile(`\b(\d{5})\b`),
		rewrite: func(g []string) string { return g[1][:2] + "***" },
	},
}

func applyRules(text string, rules []rule) string {
	for _, r := range rules {
		re := r.pattern
		rw := r.rewrite
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			groups := re.FindStringSubmatch(match)
			if groups == nil {
				return match
			}
			return rw(groups)
		})
	}
	return text
}

// SanitizeNames masks Turkish personal-name patterns.
func SanitizeNames(text string) string {
	return applyRules(text, nameRules)
}

// SanitizeEmails masks the local part of email addresses, preserving the
// domain and the local part's first and last character.
func SanitizeEmails(text string) string {
	return applyRules(text, emailRules)
}

// SanitizePhoneNumbers masks the middle groups of Turkish mobile numbers.
func SanitizePhoneNumbers(text string) string {
	return applyRules(text, phoneRules)
}

// SanitizeNationalIds masks the middle six digits of 11-digit identity
// numbers.
func SanitizeNationalIds(text string) string {
	return applyRules(text, identityRules)
}

// SanitizeAddresses masks street names, door numbers and postal codes.
func SanitizeAddresses(text string) string {
	return applyRules(text, addressRules)
}

// Sanitize applies the full masking pipeline in its fixed order. It is
// idempotent: sanitizing already-sanitized text is a no-op.
func Sanitize(text string) string {
	text = SanitizeNames(text)
	text = SanitizeEmails(text)
	text = SanitizePhoneNumbers(text)
	text = SanitizeNationalIds(text)
	text = SanitizeAddresses(text)
	return text
}

// Field names whose string values carry personal data. Matching is
// substring-based in both directions, as in the original vocabulary.
var personalDataFields = []string{
	"name", "fullname", "full_name", "firstname", "first_name",
	"lastname", "last_name", "username", "user_name",
	"email", "phone", "telephone", "mobile", "gsm",
	"address", "adres", "street", "sokak", "cadde",
	"tckn", "tc", "kimlik", "identity", "passport",
	"basvurucu", "davaci", "davali", "müvekkil", "avukat",
	"raportor", "üye", "hakim", "savci",
}

func isPersonalDataField(key string) bool {
	lower := strings.ToLower(key)
	for _, field := range personalDataFields {
		if strings.Contains(lower, field) || strings.Contains(field, lower) {
			return true
		}
	}
	return false
}

// SanitizeRecord walks a structured record and masks string values held under
// personal-data field names, recursing into nested maps and slices.
// Non-matching attributes pass through unchanged.
func SanitizeRecord(record map[string]interface{}) map[string]interface{} {
	if record == nil {
		return nil
	}

	sanitized := make(map[string]interface{}, len(record))
	for key, value := range record {
		switch v := value.(type) {
		case string:
			if isPersonalDataField(key) {
				sanitized[key] = Sanitize(v)
			} else {
				sanitized[key] = v
			}
		case map[string]interface{}:
			sanitized[key] = SanitizeRecord(v)
		case []interface{}:
			items := make([]interface{}, len(v))
			for i, item := range v {
				if nested, ok := item.(map[string]interface{}); ok {
					items[i] = SanitizeRecord(nested)
				} else {
					items[i] = item
				}
			}
			sanitized[key] = items
		default:
			sanitized[key] = value
		}
	}
	return sanitized
}
