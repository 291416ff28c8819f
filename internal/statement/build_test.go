package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func january2024() Period {
	return Period{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func chaseMapping() Mapping {
	return Mapping{Date: "Posting Date", Description: "Description", Amount: "Amount"}
}

func TestBuildTransactions_EndToEnd(t *testing.T) {
	t.Parallel()

	chase := mustProfile(t, "chase")
	rows := []Record{
		{"Posting Date": "01/15/2024", "Description": "Coffee Shop", "Amount": "-4.50"},
	}

	res := BuildTransactions(rows, chaseMapping(), chase, january2024())
	require.Len(t, res.Accepted, 1)
	require.Equal(t, 0, res.Skipped())

	c := res.Accepted[0]
	require.Equal(t, 2024, c.Date.Year())
	require.Equal(t, time.January, c.Date.Month())
	require.Equal(t, 15, c.Date.Day())
	require.Equal(t, "Coffee Shop", c.Description)
	require.Equal(t, int64(-450), c.AmountCents)
	require.Nil(t, c.Memo)
}

func TestBuildTransactions_RowFailureIsolation(t *testing.T) {
	t.Parallel()

	chase := mustProfile(t, "chase")
	var rows []Record
	for i := 1; i <= 10; i++ {
		date := "01/15/2024"
		if i == 7 {
			date = "garbage"
		}
		rows = append(rows, Record{
			"Posting Date": date,
			"Description":  "Row",
			"Amount":       "-1.00",
		})
	}

	res := BuildTransactions(rows, chaseMapping(), chase, january2024())
	require.Len(t, res.Accepted, 9)
	require.Equal(t, 1, res.Unparseable)
	require.Equal(t, 0, res.OutOfRange)
}

func TestBuildTransactions_PeriodFilter(t *testing.T) {
	t.Parallel()

	chase := mustProfile(t, "chase")
	rows := []Record{
		{"Posting Date": "12/31/2023", "Description": "before", "Amount": "-1.00"},
		{"Posting Date": "01/01/2024", "Description": "start", "Amount": "-1.00"},
		{"Posting Date": "01/31/2024", "Description": "end", "Amount": "-1.00"},
		{"Posting Date": "02/01/2024", "Description": "after", "Amount": "-1.00"},
	}

	res := BuildTransactions(rows, chaseMapping(), chase, january2024())
	require.Len(t, res.Accepted, 2)
	require.Equal(t, 2, res.OutOfRange)
	require.Equal(t, "start", res.Accepted[0].Description)
	require.Equal(t, "end", res.Accepted[1].Description)
}

func TestBuildTransactions_MemoAndBadAmount(t *testing.T) {
	t.Parallel()

	chase := mustProfile(t, "chase")
	mapping := chaseMapping()
	mapping.Memo = "Memo"
	rows := []Record{
		{"Posting Date": "01/15/2024", "Description": "a", "Amount": "-4.50", "Memo": "card 1234"},
		{"Posting Date": "01/15/2024", "Description": "b", "Amount": "-4.50", "Memo": ""},
		{"Posting Date": "01/15/2024", "Description": "c", "Amount": "oops", "Memo": "x"},
	}

	res := BuildTransactions(rows, mapping, chase, january2024())
	require.Len(t, res.Accepted, 2)
	require.Equal(t, 1, res.Unparseable)
	require.NotNil(t, res.Accepted[0].Memo)
	require.Equal(t, "card 1234", *res.Accepted[0].Memo)
	require.Nil(t, res.Accepted[1].Memo)
}

func TestBuildTransactions_ZeroQualifyingIsAValue(t *testing.T) {
	t.Parallel()

	chase := mustProfile(t, "chase")
	rows := []Record{
		{"Posting Date": "06/15/2025", "Description": "far away", "Amount": "-1.00"},
	}

	res := BuildTransactions(rows, chaseMapping(), chase, january2024())
	require.Empty(t, res.Accepted)
	require.Equal(t, 1, res.Skipped())
}
