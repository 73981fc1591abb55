package mail

import (
	"fmt"
	"strings"

	"github.com/pbsgifts/promoweb/internal/api/dto/v1/contact"
	"github.com/pbsgifts/promoweb/internal/api/dto/v1/quote"
	"github.com/pbsgifts/promoweb/internal/api/sanitization"
)

// Composed is the rendered pair of bodies plus the subject for one outbound
// message.
type Composed struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// ComposeContact renders a contact submission. Every user-supplied value
// interpolated into HTML is escaped; the text body is plain concatenation.
func ComposeContact(req *contact.SubmissionRequest) Composed {
	var html strings.Builder
	html.WriteString("<h2>Nuevo mensaje</h2>")
	html.WriteString("<p><b>Nombre:</b> " + sanitization.EscapeHTML(req.Name) + "</p>")
	html.WriteString("<p><b>Correo:</b> " + sanitization.EscapeHTML(req.Email) + "</p>")
	if req.Phone != "" {
		html.WriteString("<p><b>Teléfono:</b> " + sanitization.EscapeHTML(req.Phone) + "</p>")
	}
	html.WriteString("<p><b>Asunto:</b> " + sanitization.EscapeHTML(req.Subject) + "</p>")
	html.WriteString("<hr/>")
	html.WriteString(`<pre style="white-space:pre-wrap">` + sanitization.EscapeHTML(req.Message) + "</pre>")

	phone := req.Phone
	if phone == "" {
		phone = "-"
	}
	text := fmt.Sprintf("Nombre: %s\nCorreo: %s\nTeléfono: %s\nAsunto: %s\n\n%s",
		req.Name, req.Email, phone, req.Subject, req.Message)

	return Composed{
		Subject:  fmt.Sprintf("📩 %s — %s", req.Subject, req.Name),
		HTMLBody: html.String(),
		TextBody: text,
	}
}

// ComposeQuote renders a quote submission with the cart as an HTML table.
func ComposeQuote(req *quote.SubmissionRequest) Composed {
	var rows strings.Builder
	for _, it := range req.Items {
		rows.WriteString(`<tr>`)
		rows.WriteString(`<td style="padding:8px;border:1px solid #eee">` + sanitization.EscapeHTML(it.Name) + `</td>`)
		rows.WriteString(fmt.Sprintf(`<td style="padding:8px;border:1px solid #eee;text-align:center">%d</td>`, it.Qty))
		rows.WriteString(`</tr>`)
	}

	var html strings.Builder
	html.WriteString("<h2>Nueva Solicitud de Cotización</h2>")
	html.WriteString("<h3>Cliente</h3>")
	html.WriteString("<ul>")
	html.WriteString("<li><b>Nombre:</b> " + sanitization.EscapeHTML(req.Customer.Name) + "</li>")
	html.WriteString("<li><b>Email:</b> " + sanitization.EscapeHTML(req.Customer.Email) + "</li>")
	html.WriteString("<li><b>Teléfono:</b> " + sanitization.EscapeHTML(req.Customer.Phone) + "</li>")
	html.WriteString("</ul>")
	html.WriteString("<h3>Items</h3>")
	html.WriteString(`<table style="border-collapse:collapse;border:1px solid #eee">`)
	html.WriteString(`<thead><tr style="background:#fafafa"><th style="padding:8px;border:1px solid #eee;text-align:left">Producto</th><th style="padding:8px;border:1px solid #eee;text-align:center">Cant.</th></tr></thead>`)
	html.WriteString("<tbody>" + rows.String() + "</tbody>")
	html.WriteString("</table>")
	if req.Notes != "" {
		html.WriteString(`<h3>Notas</h3><p style="white-space:pre-wrap">` + sanitization.EscapeHTML(req.Notes) + "</p>")
	}

	var text strings.Builder
	text.WriteString("Nueva Solicitud de Cotización\n\n")
	text.WriteString(fmt.Sprintf("Cliente:\n- Nombre: %s\n- Email: %s\n- Teléfono: %s\n\n",
		req.Customer.Name, req.Customer.Email, req.Customer.Phone))
	text.WriteString("Items:\n")
	for i, it := range req.Items {
		if i > 0 {
			text.WriteString("\n")
		}
		text.WriteString(fmt.Sprintf("- %s x %d", it.Name, it.Qty))
	}
	if req.Notes != "" {
		text.WriteString("\n\nNotas:\n" + req.Notes)
	}
	text.WriteString("\n\nMensaje generado automáticamente.")

	return Composed{
		Subject:  "Nueva solicitud de cotización",
		HTMLBody: html.String(),
		TextBody: text.String(),
	}
}
