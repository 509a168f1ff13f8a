package model

import "net/url"

// ResumeCursor points at the next page to request from a redundant source.
type ResumeCursor struct {
	url *url.URL
}

// NewResumeCursor wraps an absolute URL.
func NewResumeCursor(u *url.URL) ResumeCursor {
	return ResumeCursor{url: u}
}

// URL returns a copy of the cursor URL.
func (c ResumeCursor) URL() *url.URL {
	if c.url == nil {
		return nil
	}
	u := *c.url
	return &u
}

// IsZero reports whether the cursor is unset.
func (c ResumeCursor) IsZero() bool {
	return c.url == nil
}

func (c ResumeCursor) String() string {
	if c.url == nil {
		return ""
	}
	return c.url.String()
}
