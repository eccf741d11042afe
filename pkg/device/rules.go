package device

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules holds the lookup tables used by the classifier.
// All entries are matched against the lower-cased user agent.
type Rules struct {
	// NormalKeywords force a Normal classification when found anywhere in the UA.
	NormalKeywords []string `yaml:"normal_keywords"`

	// TabletKeywords classify a UA as Tablet when found anywhere in it.
	TabletKeywords []string `yaml:"tablet_keywords"`

	// MobileKeywords classify a UA as Mobile when found anywhere in it.
	MobileKeywords []string `yaml:"mobile_keywords"`

	// MobilePrefixes classify a UA as Mobile when its first four characters match.
	MobilePrefixes []string `yaml:"mobile_prefixes"`
}

var defaultTabletKeywords = []string{"ipad", "playbook", "hp-tablet", "kindle"}

var defaultMobileKeywords = []string{
	"blackberry", "webos", "ipod", "lge vx", "midp", "maemo", "mmp", "mobile",
	"netfront", "hiptop", "nintendo ds", "novarra", "openweb", "opera mobi",
	"opera mini", "palm", "psp", "phone", "smartphone", "symbian", "up.browser",
	"up.link", "wap", "windows ce",
}

var defaultMobilePrefixes = []string{
	"w3c ", "w3c-", "acs-", "alav", "alca", "amoi", "audi", "avan", "benq",
	"bird", "blac", "blaz", "brew", "cell", "cldc", "cmd-", "dang", "doco",
	"eric", "hipt", "htc_", "inno", "ipaq", "ipod", "jigs", "kddi", "keji",
	"leno", "lg-c", "lg-d", "lg-g", "lge-", "lg/u", "maui", "maxo", "midp",
	"mits", "mmef", "mobi", "mot-", "moto", "mwbp", "nec-", "newt", "noki",
	"palm", "pana", "pant", "phil", "play", "port", "prox", "qwap", "sage",
	"sams", "sany", "sch-", "sec-", "send", "seri", "sgh-", "shar", "sie-",
	"siem", "smal", "smar", "sony", "sph-", "symb", "t-mo", "teli", "tim-",
	"tosh", "tsm-", "upg1", "upsi", "vk-v", "voda", "wap-", "wapa", "wapi",
	"wapp", "wapr", "webc", "winw", "xda ", "xda-",
}

// DefaultRules returns a fresh copy of the built-in tables.
// Callers may modify the result without affecting other classifiers.
func DefaultRules() Rules {
	return Rules{
		NormalKeywords: nil,
		TabletKeywords: append([]string(nil), defaultTabletKeywords...),
		MobileKeywords: append([]string(nil), defaultMobileKeywords...),
		MobilePrefixes: append([]string(nil), defaultMobilePrefixes...),
	}
}

// LoadRules decodes rule tables from YAML. Tables missing from the document
// keep their default values; an explicitly empty list clears the table.
//
// Example document:
//
//	normal_keywords:
//	  - "desktop-mode"
//	tablet_keywords: ["ipad", "playbook", "hp-tablet", "kindle", "tab"]
func LoadRules(r io.Reader) (Rules, error) {
	rules := DefaultRules()
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil && !errors.Is(err, io.EOF) {
		return Rules{}, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	if err := rules.validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// LoadRulesFile reads rule tables from a YAML file.
func LoadRulesFile(path string) (Rules, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rules{}, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	defer f.Close()
	return LoadRules(f)
}

func (r Rules) validate() error {
	tables := map[string][]string{
		"normal_keywords": r.NormalKeywords,
		"tablet_keywords": r.TabletKeywords,
		"mobile_keywords": r.MobileKeywords,
	}
	for name, table := range tables {
		for i, kw := range table {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%w: %s[%d] is empty", ErrInvalidRules, name, i)
			}
		}
	}
	for i, p := range r.MobilePrefixes {
		if len(p) != 4 {
			return fmt.Errorf("%w: mobile_prefixes[%d] %q must be exactly 4 characters", ErrInvalidRules, i, p)
		}
	}
	return nil
}

// keywordSet optimizes keyword lookups using map structure
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[strings.ToLower(word)] = struct{}{}
	}
	return result
}

// contains reports whether any keyword is a substring of s.
func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// has reports whether s is one of the keywords.
func (k keywordSet) has(s string) bool {
	_, ok := k[s]
	return ok
}
