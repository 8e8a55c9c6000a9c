package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"cookbook/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int64.
	MaxPage = 1_000_000
)

// Page is a 1-based page window over a result set.
type Page struct {
	Page  int
	Limit int
}

// Window converts the page into skip/limit, applying defaults and the limit cap.
func (p Page) Window() (skip, limit int64) {
	page, lim := p.Page, p.Limit
	if page < 1 {
		page = DefaultPage
	}
	if lim < 1 {
		lim = DefaultLimit
	}
	if lim > MaxLimit {
		lim = MaxLimit
	}
	if page > MaxPage {
		page = MaxPage
	}
	return int64(page-1) * int64(lim), int64(lim)
}

// ParsePage reads page and limit from the query string.
func ParsePage(q url.Values) (Page, error) {
	page, err := QueryInt(q, "page")
	if err != nil {
		return Page{}, err
	}
	limit, err := QueryInt(q, "limit")
	if err != nil {
		return Page{}, err
	}
	var p Page
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}
	if p.Page < 0 || p.Limit < 0 {
		return Page{}, apperr.Invalid("page and limit must be positive", nil)
	}
	if p.Page > MaxPage {
		return Page{}, apperr.Invalid(fmt.Sprintf("page must not exceed %d", MaxPage), nil)
	}
	return p, nil
}

// QueryInt returns nil when the parameter is absent.
func QueryInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Invalid(fmt.Sprintf("%s must be an integer, got '%s'", key, raw), nil)
	}
	return &n, nil
}

// QueryBool returns nil when the parameter is absent.
func QueryBool(q url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperr.Invalid(fmt.Sprintf("%s must be true or false, got '%s'", key, raw), nil)
	}
	return &b, nil
}
