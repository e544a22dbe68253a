package delivery

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLinks(t *testing.T) {
	l := listLinks{base: "/produit", term: "hood", menu: "p1", page: 2}

	assert.Equal(t, "/produit?page=2&q=hood", l.Self())
	assert.Equal(t, "/produit?page=2&q=hood", l.Menu("p1"))
	assert.Equal(t, "/produit?menu=p2&page=2&q=hood", l.Menu("p2"))
	assert.Equal(t, "/produit?confirm=p1&page=2&q=hood", l.Confirm("p1"))
	assert.Equal(t, "/produit?q=hood", l.Page(1))
	assert.Equal(t, "/produit?page=2", l.Reset())

	assert.Equal(t, "/categories", listLinks{base: "/categories"}.Self())
}

func TestLocalPath(t *testing.T) {
	assert.Equal(t, "/users?q=a", localPath("/users?q=a", "/users"))
	assert.Equal(t, "/users", localPath("https://evil.example", "/users"))
	assert.Equal(t, "/users", localPath("//evil.example", "/users"))
	assert.Equal(t, "/users", localPath("", "/users"))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "Date non disponible", formatDate(nil))

	ts := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	assert.Regexp(t, `^0[23]/05/2024$`, formatDate(&ts))

	assert.Contains(t, formatMoney(decimal.RequireFromString("1234.5")), "€")
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := ParseTemplates()
	require.NoError(t, err)

	for _, name := range []string{
		"home.gohtml", "not_found.gohtml",
		"category_list.gohtml", "category_form.gohtml", "category_delete.gohtml",
		"product_list.gohtml", "product_form.gohtml", "product_details.gohtml",
		"user_list.gohtml", "user_form.gohtml", "user_delete.gohtml",
		"order_list.gohtml", "order_detail.gohtml",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
