package binding

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/pbsgifts/promoweb/internal/api/dto/v1/contact"
	"github.com/pbsgifts/promoweb/internal/api/dto/v1/quote"
	"github.com/pbsgifts/promoweb/internal/api/sanitization"
)

// ErrUnparseableBody signals a body that could not be decoded at all.
// Bodies that parse but lack fields are not an error; the missing fields
// default to empty strings and the validator reports them.
var ErrUnparseableBody = errors.New("unparseable request body")

const (
	contentTypeJSON      = "application/json"
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"
)

// isFormEncoded classifies the request's content type. Anything that is not
// an explicit form encoding is attempted as JSON.
func isFormEncoded(c *gin.Context) bool {
	switch c.ContentType() {
	case contentTypeForm, contentTypeMultipart:
		return true
	}
	return false
}

// ParseContact extracts a contact submission from a JSON or form-encoded
// body. All fields are trimmed; missing fields default to empty strings.
func ParseContact(c *gin.Context) (*contact.SubmissionRequest, error) {
	req := &contact.SubmissionRequest{}

	if isFormEncoded(c) {
		req.Name = c.PostForm("name")
		req.Email = c.PostForm("email")
		req.Phone = c.PostForm("phone")
		req.Subject = c.PostForm("subject")
		req.Message = c.PostForm("message")
		req.Website = c.PostForm("website")
	} else {
		if err := decodeJSON(c.Request.Body, req); err != nil {
			return nil, ErrUnparseableBody
		}
	}

	req.Name = sanitization.NormalizeField(req.Name)
	req.Email = sanitization.NormalizeField(req.Email)
	req.Phone = sanitization.NormalizeField(req.Phone)
	req.Subject = sanitization.NormalizeField(req.Subject)
	req.Message = sanitization.NormalizeField(req.Message)
	req.Website = sanitization.NormalizeField(req.Website)

	return req, nil
}

// ParseQuote extracts a quote submission. Form-encoded bodies carry the cart
// as a JSON-encoded string in the "items" field and the customer record as
// dotted field names; a bad items payload degrades to an empty list, which
// the validator then reports as an empty cart.
func ParseQuote(c *gin.Context) (*quote.SubmissionRequest, error) {
	req := &quote.SubmissionRequest{}

	if isFormEncoded(c) {
		req.Customer = quote.Customer{
			Name:  c.PostForm("customer.name"),
			Email: c.PostForm("customer.email"),
			Phone: c.PostForm("customer.phone"),
		}
		req.Notes = c.PostForm("notes")
		req.Website = c.PostForm("website")

		itemsRaw := c.PostForm("items")
		if itemsRaw == "" {
			itemsRaw = "[]"
		}
		var items []quote.Item
		if err := json.Unmarshal([]byte(itemsRaw), &items); err == nil {
			req.Items = items
		} else {
			req.Items = []quote.Item{}
		}
	} else {
		if err := decodeJSON(c.Request.Body, req); err != nil {
			return nil, ErrUnparseableBody
		}
	}

	req.Customer.Name = sanitization.NormalizeField(req.Customer.Name)
	req.Customer.Email = sanitization.NormalizeField(req.Customer.Email)
	req.Customer.Phone = sanitization.NormalizeField(req.Customer.Phone)
	req.Notes = sanitization.NormalizeField(req.Notes)
	req.Website = sanitization.NormalizeField(req.Website)
	for i := range req.Items {
		req.Items[i].Name = sanitization.NormalizeField(req.Items[i].Name)
	}

	return req, nil
}

func decodeJSON(r io.Reader, dst interface{}) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}
