package remote

import (
	"strconv"
	"strings"

	"github.com/tomnomnom/linkheader"
)

// Links holds the pagination relations of a Link header.
type Links struct {
	Current string
	Next    string
}

// Continuation returns the URL to request next. current wins over next.
func (l Links) Continuation() string {
	if l.Current != "" {
		return l.Current
	}
	return l.Next
}

// ParseLinks reads `<target>; rel="name"` entries from a Link header value.
// Entries without a rel or target are ignored. ok is false for an empty header.
func ParseLinks(header string) (Links, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return Links{}, false
	}

	protected, targets := protectTargets(header)

	var links Links
	for _, link := range linkheader.Parse(protected) {
		i, err := strconv.Atoi(link.URL)
		if err != nil || i < 0 || i >= len(targets) {
			continue
		}
		target := strings.TrimSpace(targets[i])
		if target == "" {
			continue
		}
		for _, rel := range strings.Fields(strings.ToLower(link.Rel)) {
			switch rel {
			case "current":
				links.Current = target
			case "next":
				links.Next = target
			}
		}
	}
	return links, true
}

// protectTargets swaps every <target> for its index so that commas and
// semicolons inside a URI reference do not split the entry. Angle brackets
// inside quoted parameter values are left alone.
func protectTargets(header string) (string, []string) {
	var (
		b       strings.Builder
		targets []string
		quoted  bool
	)
	b.Grow(len(header))
	for i := 0; i < len(header); i++ {
		ch := header[i]
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == '<' && !quoted:
			end := strings.IndexByte(header[i+1:], '>')
			if end < 0 {
				break
			}
			targets = append(targets, header[i+1:i+1+end])
			b.WriteString("<" + strconv.Itoa(len(targets)-1) + ">")
			i += end + 1
			continue
		}
		b.WriteByte(ch)
	}
	return b.String(), targets
}
