package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbsgifts/promoweb/internal/api/dto/v1/contact"
	"github.com/pbsgifts/promoweb/internal/api/dto/v1/quote"
)

func TestComposeContact(t *testing.T) {
	c := ComposeContact(&contact.SubmissionRequest{
		Name:    "Ana",
		Email:   "a@x.com",
		Phone:   "0991234567",
		Subject: "Hola",
		Message: "Necesito info",
	})

	assert.Equal(t, "📩 Hola — Ana", c.Subject)
	assert.Contains(t, c.HTMLBody, "<b>Nombre:</b> Ana")
	assert.Contains(t, c.HTMLBody, "<b>Teléfono:</b> 0991234567")
	assert.Contains(t, c.TextBody, "Nombre: Ana")
	assert.Contains(t, c.TextBody, "Necesito info")
}

func TestComposeContact_OptionalPhoneOmitted(t *testing.T) {
	c := ComposeContact(&contact.SubmissionRequest{
		Name:    "Ana",
		Email:   "a@x.com",
		Subject: "Hola",
		Message: "Necesito info",
	})

	assert.NotContains(t, c.HTMLBody, "Teléfono")
	assert.Contains(t, c.TextBody, "Teléfono: -")
}

func TestComposeContact_EscapesHTML(t *testing.T) {
	c := ComposeContact(&contact.SubmissionRequest{
		Name:    "<script>alert(1)</script>",
		Email:   `a"b@x.com`,
		Subject: "Hola & chau",
		Message: "it's <b>bold</b>",
	})

	assert.NotContains(t, c.HTMLBody, "<script>")
	assert.Contains(t, c.HTMLBody, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, c.HTMLBody, "a&quot;b@x.com")
	assert.Contains(t, c.HTMLBody, "Hola &amp; chau")
	assert.Contains(t, c.HTMLBody, "it&#39;s &lt;b&gt;bold&lt;/b&gt;")

	// Text body stays literal
	assert.Contains(t, c.TextBody, "it's <b>bold</b>")
}

func TestComposeQuote(t *testing.T) {
	c := ComposeQuote(&quote.SubmissionRequest{
		Customer: quote.Customer{Name: "María Pérez", Email: "m@x.com", Phone: "0991234567"},
		Notes:    "logo en dos colores",
		Items: []quote.Item{
			{Name: "Taza", Qty: 12},
			{Name: "Gorra <negra>", Qty: 5},
		},
	})

	assert.Equal(t, "Nueva solicitud de cotización", c.Subject)
	assert.Contains(t, c.HTMLBody, "<li><b>Nombre:</b> María Pérez</li>")
	assert.Contains(t, c.HTMLBody, ">Taza</td>")
	assert.Contains(t, c.HTMLBody, "Gorra &lt;negra&gt;")
	assert.Contains(t, c.HTMLBody, "<h3>Notas</h3>")
	assert.Equal(t, 2, strings.Count(c.HTMLBody, "<tr>")) // one row per item

	assert.Contains(t, c.TextBody, "- Taza x 12")
	assert.Contains(t, c.TextBody, "- Gorra <negra> x 5")
	assert.Contains(t, c.TextBody, "Notas:\nlogo en dos colores")
}

func TestComposeQuote_NoNotes(t *testing.T) {
	c := ComposeQuote(&quote.SubmissionRequest{
		Customer: quote.Customer{Name: "María Pérez", Email: "m@x.com", Phone: "0991234567"},
		Items:    []quote.Item{{Name: "Taza", Qty: 1}},
	})

	assert.NotContains(t, c.HTMLBody, "Notas")
	assert.NotContains(t, c.TextBody, "Notas")
}
