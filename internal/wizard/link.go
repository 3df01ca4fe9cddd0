package wizard

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	linkAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	linkSuffixLen = 6
)

// LinkGenerator builds candidate-facing interview links of the form
// <base>/INT-<epoch millis>-<6 uppercase base36 chars>. The suffix is a
// display token, not a secret.
type LinkGenerator struct {
	BaseURL string
	Now     func() time.Time
	IntN    func(n int) int
}

func NewLinkGenerator(baseURL string) *LinkGenerator {
	return &LinkGenerator{BaseURL: baseURL, Now: time.Now, IntN: rand.IntN}
}

func (g *LinkGenerator) Generate() string {
	now, intn := g.Now, g.IntN
	if now == nil {
		now = time.Now
	}
	if intn == nil {
		intn = rand.IntN
	}

	suffix := make([]byte, linkSuffixLen)
	for i := range suffix {
		suffix[i] = linkAlphabet[intn(len(linkAlphabet))]
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(g.BaseURL, "/"))
	b.WriteString("/INT-")
	b.WriteString(strconv.FormatInt(now().UnixMilli(), 10))
	b.WriteByte('-')
	b.Write(suffix)
	return b.String()
}

// EnsureLink sets r.InterviewLink once; an existing link is kept.
func (g *LinkGenerator) EnsureLink(r *Record) bool {
	if r.InterviewLink != "" {
		return false
	}
	r.InterviewLink = g.Generate()
	return true
}
