package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receivecopy/internal/domain/receive"
)

func fixtures() []receive.Record {
	return []receive.Record{
		{
			ID:                 "a1",
			ConsecutiveNo:      "1",
			Date:               "2024-03-01",
			ToWhomAddressed:    "Director",
			ShortSubject:       `Budget "draft"`,
			FileNo:             "F-7",
			SerialNoOfLetter:   "12",
			CollectionNoTitle:  "C-1",
			FileNoInCollection: "3",
			ReplyNo:            "R-9",
			ReplyDate:          "2024-03-10",
			StampRs:            "5",
			StampP:             "50",
			Remarks:            "urgent, review",
			Action:             receive.ActionPending,
			SlNo:               "1",
			Subject:            `Budget "draft"`,
		},
		{
			ID:               "b2",
			ConsecutiveNo:    "2",
			Date:             "2024-03-02",
			ToWhomAddressed:  "HR",
			ShortSubject:     "Leave",
			SerialNoOfLetter: "4",
			Action:           receive.ActionSuccess,
			SlNo:             "2",
			Subject:          "Leave",
		},
	}
}

func TestCSV_Golden(t *testing.T) {
	data, err := CSV(fixtures())
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "receives_csv", data)
}

func TestCSV_Shape(t *testing.T) {
	data, err := CSV(fixtures())
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 3)
	assert.False(t, strings.HasSuffix(string(data), "\n"))
	assert.True(t, strings.HasPrefix(lines[0], `"Consecutive No","Date"`))
	assert.Contains(t, lines[1], `"F-7 / 12"`)
	assert.Contains(t, lines[2], `"4"`)
}

func TestEmptyExportsAreRefused(t *testing.T) {
	_, err := CSV(nil)
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = JSON([]receive.Record{})
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = HTML(nil, PrintOptions{})
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = PDF(nil, PrintOptions{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestJSON(t *testing.T) {
	records := fixtures()
	data, err := JSON(records)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("[\n  {\n    \"id\": \"a1\"")))

	var back []receive.Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, records, back)
}

func TestETag(t *testing.T) {
	a := ETag([]byte("[]"))
	b := ETag([]byte("[ ]"))

	assert.Len(t, a, 66)
	assert.True(t, strings.HasPrefix(a, `"`) && strings.HasSuffix(a, `"`))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, ETag([]byte("[]")))
}

func TestHTML(t *testing.T) {
	records := fixtures()
	records[1].Remarks = "<script>alert(1)</script>"

	data, err := HTML(records, PrintOptions{Printed: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "<title>Receive Copy Report</title>")
	assert.Contains(t, out, "Printed: 04/05/2024")
	assert.Contains(t, out, `<th colspan="3">Where the draft is placed</th>`)
	assert.Contains(t, out, "<td>March 1, 2024</td>")
	assert.Contains(t, out, `<div class="reply-date">March 10, 2024</div>`)
	assert.Contains(t, out, "F-7 / 12")
	assert.Contains(t, out, "Budget &#34;draft&#34;")
	assert.NotContains(t, out, "<script>")
	assert.Equal(t, 2, strings.Count(out, "<tr>\n          <td>"))
}

func TestPDF(t *testing.T) {
	records := make([]receive.Record, 0, 120)
	for i := 0; i < 60; i++ {
		records = append(records, fixtures()...)
	}
	records[0].Remarks = "Überweisung – café"

	data, err := PDF(records, PrintOptions{Printed: time.Now()})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.True(t, bytes.Contains(data, []byte("%%EOF")))
}
