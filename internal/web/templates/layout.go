// Package templates assembles full HTML documents from view fragments.
package templates

import (
	"context"
	"io"

	"github.com/Conceptual-Machines/music-creator/internal/view"
	"github.com/a-h/templ"
)

const (
	Title       = "AI Music Creator - Suno 연동 음악 창작 플랫폼"
	tailwindCDN = "https://cdn.tailwindcss.com"
	fontAwesome = "https://cdn.jsdelivr.net/npm/@fortawesome/fontawesome-free@6.4.0/css/all.min.css"
	stylesheet  = "/static/style.css"
)

// Layout wraps body in the document head shared by every page
func Layout(lang, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}
		head := view.El("head", nil,
			view.El("meta", view.A("charset", "UTF-8")),
			view.El("meta", view.A("name", "viewport", "content", "width=device-width, initial-scale=1.0")),
			view.El("title", nil, view.Text(title)),
			view.El("script", view.A("src", tailwindCDN)),
			view.El("link", view.A("href", fontAwesome, "rel", "stylesheet")),
			view.El("link", view.A("href", stylesheet, "rel", "stylesheet")),
		)
		if _, err := io.WriteString(w, `<html lang="`+templ.EscapeString(lang)+`">`); err != nil {
			return err
		}
		if err := view.Render(w, head); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<body class="bg-gray-900">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// Home is the creator page: shell, both modals and the client script
func Home(lang string) templ.Component {
	return Layout(lang, Title, view.Component(
		view.Shell(),
		view.StyleModal(),
		view.LyricsModal(),
		view.Script(),
	))
}
