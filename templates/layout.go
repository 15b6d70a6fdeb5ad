// Package templates renders the HTML views as templ components.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// esc escapes a string for safe HTML interpolation.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps a body component in the page skeleton with the HTMX
// runtime and the toast listener.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"></script>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header class="site-header"><a href="/">Products</a> <a href="/cart">Cart</a> <a href="/acoustics">Acoustics</a></header>
<main id="main">`, esc(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
<div id="toast" class="toast" hidden></div>
<script>
function showToast(message, type) {
  var t = document.getElementById("toast");
  t.textContent = message;
  t.className = "toast toast-" + type;
  t.hidden = false;
  setTimeout(function () { t.hidden = true; }, 4000);
}
document.body.addEventListener("showToast", function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
// Flash toasts survive non-HTMX redirects via a short-lived cookie.
var flash = document.cookie.split("; ").find(function (c) { return c.indexOf("flash_toast=") === 0; });
if (flash) {
  try {
    var data = JSON.parse(decodeURIComponent(flash.slice("flash_toast=".length)));
    showToast(data.message, data.type);
  } catch (err) {}
  document.cookie = "flash_toast=; Path=/; Max-Age=0";
}
</script>
</body>
</html>`)
		return err
	})
}

// ErrorFragment renders an inline, recoverable error message.
func ErrorFragment(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="error-message">%s</p>`, esc(message))
		return err
	})
}
