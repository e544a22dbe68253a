package usecase

import (
	"strconv"
	"strings"
)

// ListQuery carries the list page state that lives in the URL.
type ListQuery struct {
	Term    string
	Menu    string
	Confirm string
	Page    int
}

// ListView is what one list page renders: the collection fetched for this request
// and the subset of it matching the search term.
type ListView[T any] struct {
	Source     []T
	Displayed  []T
	SearchTerm string
	OpenMenu   string
	Confirm    string
	Error      string
	Pager      Pager
}

func newListView[T any](q ListQuery) *ListView[T] {
	return &ListView[T]{
		SearchTerm: q.Term,
		OpenMenu:   q.Menu,
		Confirm:    q.Confirm,
		Pager:      NewPager(1, 1),
	}
}

func (v *ListView[T]) load(source []T, match func(T, string) bool) {
	v.Source = source
	v.Displayed = Filter(source, v.SearchTerm, match)
}

// Filter returns source itself when term is blank, otherwise the entries accepted by match.
func Filter[T any](source []T, term string, match func(T, string) bool) []T {
	if strings.TrimSpace(term) == "" {
		return source
	}
	out := make([]T, 0, len(source))
	for _, item := range source {
		if match(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// ToggleMenu gives the menu id to open after a click on id. At most one menu is open.
func ToggleMenu(open, id string) string {
	if open == id {
		return ""
	}
	return id
}

type Pager struct {
	CurrentPage int
	TotalPages  int
}

func NewPager(page, total int) Pager {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	return Pager{CurrentPage: page, TotalPages: total}
}

func (p Pager) HasPrevious() bool {
	return p.CurrentPage > 1
}

func (p Pager) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}

func (p Pager) Previous() int {
	if !p.HasPrevious() {
		return p.CurrentPage
	}
	return p.CurrentPage - 1
}

func (p Pager) Next() int {
	if !p.HasNext() {
		return p.CurrentPage
	}
	return p.CurrentPage + 1
}

// ParsePage reads a 1-based page number, defaulting to 1.
func ParsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
