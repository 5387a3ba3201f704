package domain

import (
	"regexp"
	"strings"
)

const DefaultStatusHost = "x.com"

// Extractor pulls post-status identities and raw links out of message text.
type Extractor struct {
	status *regexp.Regexp
}

func NewExtractor(hosts ...string) *Extractor {
	if len(hosts) == 0 {
		hosts = []string{DefaultStatusHost}
	}

	quoted := make([]string, 0, len(hosts))
	for _, host := range hosts {
		host = strings.TrimSpace(host)
		if host == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(host))
	}
	if len(quoted) == 0 {
		quoted = append(quoted, regexp.QuoteMeta(DefaultStatusHost))
	}

	pattern := `https://(?:` + strings.Join(quoted, "|") + `)/([^/\s]+)/status/\d+`
	return &Extractor{status: regexp.MustCompile(pattern)}
}

// ExtractIdentities returns every identity found, duplicates included.
func (e *Extractor) ExtractIdentities(text string) []Identity {
	matches := e.status.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	identities := make([]Identity, 0, len(matches))
	for _, match := range matches {
		identities = append(identities, Identity(match[1]))
	}
	return identities
}

// ExtractLinkTokens returns the distinct whitespace-delimited tokens that
// start with "http", in first-seen order.
func (e *Extractor) ExtractLinkTokens(text string) []LinkToken {
	var links []LinkToken
	seen := map[LinkToken]struct{}{}
	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "http") {
			continue
		}
		link := LinkToken(word)
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links
}
