package models

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContent = `{
	"hero": {
		"badge": "b", "headline_part1": "h1", "headline_highlight": "hh",
		"subheadline": "s", "cta_primary": "p", "cta_secondary": "c"
	},
	"services": [{"title": "t", "description": "d"}],
	"stats": [{"value": "1", "label": "l"}],
	"contact_email": "a@x.com",
	"contact_phone": "123"
}`

func TestDecodeContentWithoutAbout(t *testing.T) {
	var c Content
	require.NoError(t, Decode(strings.NewReader(validContent), &c))

	assert.Nil(t, c.About)
	assert.Equal(t, "h1", c.Hero.HeadlinePart1)
	require.Len(t, c.Services, 1)
	assert.Equal(t, "t", c.Services[0].Title)
}

func TestDecodeContentRejectsUnknownFields(t *testing.T) {
	body := strings.Replace(validContent, `"contact_phone": "123"`, `"contact_phone": "123", "extra": true`, 1)

	var c Content
	err := Decode(strings.NewReader(body), &c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "extra")
}

func TestDecodeContentReportsMissingFields(t *testing.T) {
	body := `{"hero": {"badge": "b"}, "services": [{"title": "t"}], "stats": [], "contact_email": "a@x.com"}`

	var c Content
	err := Decode(strings.NewReader(body), &c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "hero.headline_part1")
	assert.Contains(t, verr.Fields, "services[0].description")
	assert.Contains(t, verr.Fields, "contact_phone")
	assert.NotContains(t, verr.Fields, "stats")
}

func TestDecodeContentRequiresLists(t *testing.T) {
	body := strings.Replace(validContent, `"stats": [{"value": "1", "label": "l"}],`, "", 1)

	var c Content
	err := Decode(strings.NewReader(body), &c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"stats"}, verr.Fields)
}

func TestDecodeContentValidatesAboutWhenPresent(t *testing.T) {
	body := strings.Replace(validContent, `"contact_email"`, `"about": {"badge": "b"}, "contact_email"`, 1)

	var c Content
	err := Decode(strings.NewReader(body), &c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "about.image_url")
}

func TestDecodeRejectsBadBodies(t *testing.T) {
	for name, body := range map[string]string{
		"empty":      "",
		"not json":   "hello",
		"array":      "[]",
		"null":       "null",
		"two docs":   validContent + validContent,
		"wrong type": `{"name": 1, "company": "c", "email": "e", "message": "m"}`,
	} {
		t.Run(name, func(t *testing.T) {
			var lead LeadSubmission
			err := Decode(strings.NewReader(body), &lead)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestDecodeLead(t *testing.T) {
	var lead LeadSubmission
	err := Decode(strings.NewReader(`{"name":"Alice","company":"Acme","email":"not-an-email","message":"hi"}`), &lead)
	require.NoError(t, err)

	// Address format is not checked
	assert.Equal(t, "not-an-email", lead.Email)
}

func TestDecodeLeadRequiresAllKeys(t *testing.T) {
	var lead LeadSubmission
	err := Decode(strings.NewReader(`{"name":"Alice","email":"a@x.com"}`), &lead)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"company", "message"}, verr.Fields)
}

func TestDecodeLeadAcceptsEmptyStrings(t *testing.T) {
	var lead LeadSubmission
	err := Decode(strings.NewReader(`{"name":"Alice","company":"","email":"a@x.com","message":""}`), &lead)
	require.NoError(t, err)

	assert.Empty(t, lead.Company)
	assert.Empty(t, lead.Message)
}

func TestDecodeContentAcceptsEmptyStrings(t *testing.T) {
	body := `{
		"hero": {
			"badge": "", "headline_part1": "", "headline_highlight": "",
			"subheadline": "", "cta_primary": "", "cta_secondary": ""
		},
		"about": {"badge": "", "headline": "", "description": "", "image_url": ""},
		"services": [{"title": "", "description": ""}],
		"stats": [],
		"contact_email": "",
		"contact_phone": ""
	}`

	var c Content
	require.NoError(t, Decode(strings.NewReader(body), &c))
	require.NotNil(t, c.About)
	assert.Empty(t, c.About.ImageURL)
	assert.Empty(t, c.ContactPhone)
}

func TestDecodeTreatsNullAsMissing(t *testing.T) {
	body := strings.Replace(validContent, `"contact_phone": "123"`, `"contact_phone": null`, 1)
	body = strings.Replace(body, `[{"title": "t", "description": "d"}]`, `[null, {"title": null, "description": "d"}]`, 1)

	var c Content
	err := Decode(strings.NewReader(body), &c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"services[0]", "services[1].title", "contact_phone"}, verr.Fields)
}

func TestDecodeNullAboutIsAbsent(t *testing.T) {
	body := strings.Replace(validContent, `"contact_email"`, `"about": null, "contact_email"`, 1)

	var c Content
	require.NoError(t, Decode(strings.NewReader(body), &c))
	assert.Nil(t, c.About)
}

func TestDecodePassesThroughBodyLimit(t *testing.T) {
	r := http.MaxBytesReader(httptest.NewRecorder(), io.NopCloser(strings.NewReader(validContent)), 10)

	var c Content
	err := Decode(r, &c)

	var tooLarge *http.MaxBytesError
	require.ErrorAs(t, err, &tooLarge)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestUnmarshalIgnoresUnknownKeys(t *testing.T) {
	body := strings.Replace(validContent, `"contact_phone": "123"`, `"contact_phone": "123", "legacy": 1`, 1)

	var c Content
	require.NoError(t, Unmarshal([]byte(body), &c))
	assert.Equal(t, "123", c.ContactPhone)
}

func TestUnmarshalReportsMissingKeys(t *testing.T) {
	var c Content
	err := Unmarshal([]byte(`{"hero": {"badge": "b"}, "services": [], "stats": []}`), &c)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "hero.subheadline")
	assert.Contains(t, verr.Fields, "contact_email")
}
