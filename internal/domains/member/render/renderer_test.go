package render_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-gateway/internal/domains/member"
	"membership-gateway/internal/domains/member/render"
)

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, buf *bytes.Buffer) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(buf)
	require.NoError(t, err)
	return doc
}

func TestQueryPage(t *testing.T) {
	r := newRenderer(t)

	t.Run("no table before the first search", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Query(&buf, render.QueryPage{Page: render.Page{Title: "Member Search"}}))
		doc := parse(t, &buf)

		assert.Zero(t, doc.Find("#resultsTable").Length())
		assert.Equal(t, 1, doc.Find("form#queryForm input[name='searchFName']").Length())
	})

	t.Run("empty result set renders a single full-width row", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Query(&buf, render.QueryPage{Searched: true}))
		doc := parse(t, &buf)

		rows := doc.Find("#resultsBody tr")
		require.Equal(t, 1, rows.Length())
		cell := rows.Find("td")
		require.Equal(t, 1, cell.Length())
		assert.Equal(t, "4", cell.AttrOr("colspan", ""))
		assert.Equal(t, "No matching members found.", cell.Text())
	})

	t.Run("each result gets name phone email and three action links", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Query(&buf, render.QueryPage{
			Searched: true,
			Results: []member.Member{
				{ID: "abc123", FirstName: "John", LastName: "Doe", Phone: "9876543210", Email: "john@example.com"},
			},
		}))
		doc := parse(t, &buf)

		row := doc.Find("#resultsBody tr").First()
		cells := row.Find("td")
		require.Equal(t, 4, cells.Length())
		assert.Equal(t, "John Doe", cells.Eq(0).Text())
		assert.Equal(t, "9876543210", cells.Eq(1).Text())
		assert.Equal(t, "john@example.com", cells.Eq(2).Text())

		assert.Equal(t, "/members/abc123/details", row.Find("a.details-link").AttrOr("href", ""))
		assert.Equal(t, "/members/abc123/edit", row.Find("a.edit-link").AttrOr("href", ""))
		assert.Equal(t, "/members/abc123/delete", row.Find("a.delete-link").AttrOr("href", ""))
	})

	t.Run("markup in field values renders as literal text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Query(&buf, render.QueryPage{
			Searched: true,
			Results: []member.Member{
				{ID: "x", FirstName: "<script>alert('x')</script>", LastName: "Doe"},
			},
		}))
		doc := parse(t, &buf)

		assert.Zero(t, doc.Find("#resultsBody script").Length(), "markup must never become elements")
		assert.Contains(t, doc.Find("#resultsBody td").First().Text(), "<script>alert('x')</script>")
	})

	t.Run("alert banner shows when set", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Query(&buf, render.QueryPage{
			Page: render.Page{Alert: "Please enter at least one search criteria."},
		}))
		doc := parse(t, &buf)

		assert.Equal(t, "Please enter at least one search criteria.", doc.Find("div.alert").Text())
	})
}

func TestRegisterPage(t *testing.T) {
	r := newRenderer(t)

	t.Run("field errors render next to their inputs", func(t *testing.T) {
		var buf bytes.Buffer
		form := member.RegistrationForm{Phone: "12345"}
		form.Normalize()
		err := form.Validate()
		var errs validation.Errors
		require.ErrorAs(t, err, &errs)

		require.NoError(t, r.Register(&buf, render.RegisterPage{Form: form, Errors: errs}))
		doc := parse(t, &buf)

		messages := doc.Find("span.error-message").Map(func(_ int, s *goquery.Selection) string {
			return s.Text()
		})
		assert.Contains(t, messages, "This field is required.")
		assert.Contains(t, messages, "Please enter a valid 10-digit phone number.")
		assert.Equal(t, "12345", doc.Find("input[name='phone']").AttrOr("value", ""), "typed value survives")
	})

	t.Run("clean form renders no error spans", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Register(&buf, render.RegisterPage{}))
		doc := parse(t, &buf)

		assert.Zero(t, doc.Find("span.error-message").Length())
	})
}

func TestDeleteConfirmPage(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.DeleteConfirm(&buf, render.DeleteConfirmPage{
		Member: member.Member{ID: "m1", FirstName: "John", LastName: "Doe"},
	}))
	doc := parse(t, &buf)

	assert.Contains(t, doc.Text(), "Are you sure you want to delete John?")
	assert.Equal(t, 1, doc.Find("form[action='/members/m1/delete']").Length())
}

func TestDetailsPage(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Details(&buf, render.DetailsPage{
		Member: member.Member{
			FirstName: "John", LastName: "Doe", Email: "john@example.com",
			Occupation: "Student", Music: 7,
		},
	}))
	doc := parse(t, &buf)

	text := doc.Text()
	assert.Contains(t, text, "john@example.com")
	assert.Contains(t, text, "Student")
	assert.Zero(t, doc.Find("input").Length(), "details view is read-only")
}

func TestEditPage(t *testing.T) {
	r := newRenderer(t)

	var buf bytes.Buffer
	edit := member.EditSession{
		MemberID: "m1",
		Draft: member.EditForm{
			Phone: "9876543210", Email: "john@example.com",
			CurrentAddress: "A", PermanentAddress: "B", Reason: "because",
		},
	}
	require.NoError(t, r.Edit(&buf, render.EditPage{Edit: edit}))
	doc := parse(t, &buf)

	assert.Equal(t, "9876543210", doc.Find("input[name='phone']").AttrOr("value", ""))
	// The immutable fields never appear as inputs
	assert.Zero(t, doc.Find("input[name='firstName']").Length())
	assert.Zero(t, doc.Find("input[name='dob']").Length())
	assert.Equal(t, 1, doc.Find("form[action='/members/m1/edit']").Length())
}
