package delivery

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/middleware"
	"backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const flashCookie = "flash"

var printer = message.NewPrinter(language.French)

// Flash is a transient acknowledgment shown once.
type Flash struct {
	Kind    string
	Message string
}

// Page is the data every template receives.
type Page struct {
	Title        string
	Session      middleware.Session
	Flash        *Flash
	Error        string
	Errors       domain.ValidationErrors
	RedirectURL  string
	RedirectSecs int
	Data         any
}

func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money":  formatMoney,
		"amount": formatAmount,
		"date":   formatDate,
		"join":   strings.Join,
		"sizes":  func() []string { return domain.ProductSizes },
	}).ParseFS(templateFS, "templates/*.gohtml")
}

func formatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%.2f €", d.InexactFloat64())
}

func formatAmount(a domain.Amount) string {
	if !a.Valid {
		return ""
	}
	return formatMoney(a.Decimal)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return domain.FallbackDate
	}
	return t.Local().Format("02/01/2006")
}

type renderer struct {
	redirectDelay time.Duration
}

func (r *renderer) page(c *gin.Context, title string) Page {
	return Page{
		Title:   title,
		Session: middleware.GetSession(c),
		Flash:   popFlash(c),
	}
}

// redirectLater makes the page navigate to target once the notification had time to show.
func (r *renderer) redirectLater(p *Page, target string) {
	p.RedirectURL = target
	p.RedirectSecs = int(r.redirectDelay.Round(time.Second) / time.Second)
}

func (r *renderer) notify(p *Page, kind, msg string) {
	p.Flash = &Flash{Kind: kind, Message: msg}
}

func setFlash(c *gin.Context, kind, msg string) {
	c.SetCookie(flashCookie, kind+"|"+msg, 60, "/", "", false, true)
}

func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	kind, msg, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}

// listLinks builds the URLs of a list page while keeping its search term and page.
type listLinks struct {
	base string
	term string
	menu string
	page int
}

func (l listLinks) build(extra url.Values) string {
	q := url.Values{}
	if l.term != "" {
		q.Set("q", l.term)
	}
	if l.page > 1 {
		q.Set("page", strconv.Itoa(l.page))
	}
	for k, v := range extra {
		q[k] = v
	}
	if len(q) == 0 {
		return l.base
	}
	return l.base + "?" + q.Encode()
}

func (l listLinks) Self() string {
	return l.build(nil)
}

func (l listLinks) Menu(id string) string {
	next := usecase.ToggleMenu(l.menu, id)
	if next == "" {
		return l.build(nil)
	}
	return l.build(url.Values{"menu": {next}})
}

func (l listLinks) Confirm(id string) string {
	return l.build(url.Values{"confirm": {id}})
}

func (l listLinks) Page(n int) string {
	q := url.Values{}
	if l.term != "" {
		q.Set("q", l.term)
	}
	if n > 1 {
		q.Set("page", strconv.Itoa(n))
	}
	if len(q) == 0 {
		return l.base
	}
	return l.base + "?" + q.Encode()
}

func (l listLinks) Reset() string {
	if l.page > 1 {
		return l.base + "?page=" + strconv.Itoa(l.page)
	}
	return l.base
}

type listPage[T any] struct {
	View       *usecase.ListView[T]
	Links      listLinks
	Confirming *T
}

func listQuery(c *gin.Context) usecase.ListQuery {
	return usecase.ListQuery{
		Term:    c.Query("q"),
		Menu:    c.Query("menu"),
		Confirm: c.Query("confirm"),
		Page:    usecase.ParsePage(c.Query("page")),
	}
}

func find[T any](items []T, id string, idOf func(T) string) *T {
	if id == "" {
		return nil
	}
	for i := range items {
		if idOf(items[i]) == id {
			return &items[i]
		}
	}
	return nil
}

// localPath accepts only same-site absolute paths as a redirect target.
func localPath(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
