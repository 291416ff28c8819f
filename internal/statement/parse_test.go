package statement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_HappyPath(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"Posting Date,Description,Amount",
		"01/15/2024,Coffee Shop,-4.50",
		"",
		"01/16/2024,Salary,2500.00",
	}, "\n")

	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Equal(t, []string{"Posting Date", "Description", "Amount"}, res.Headers)
	require.Len(t, res.Rows, 2)
	require.Empty(t, res.Warnings)
	require.Equal(t, "Coffee Shop", res.Rows[0]["Description"])
	require.Equal(t, "-4.50", res.Rows[0]["Amount"])
	require.Equal(t, "2500.00", res.Rows[1]["Amount"])
}

func TestParse_SanitizesHeadersAndFields(t *testing.T) {
	t.Parallel()

	data := "Date,=Formula,Amount\n01/15/2024,=SUM(A1:A9),-4.50\n"
	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Equal(t, []string{"Date", "'=Formula", "Amount"}, res.Headers)
	require.Equal(t, "'=SUM(A1:A9)", res.Rows[0]["'=Formula"])
	require.Equal(t, "-4.50", res.Rows[0]["Amount"])
}

func TestParse_EmptyAndHeaderOnly(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil)
	require.ErrorIs(t, err, ErrNoRows)

	_, err = Parse([]byte("Date,Description,Amount\n"))
	require.ErrorIs(t, err, ErrNoRows)
}

func TestParse_RaggedRowsAreWarningsNotFailures(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"Date,Description,Amount",
		"01/15/2024,Coffee",
		"01/16/2024,Books,-20.00,extra",
		"01/17/2024,Rent,-900.00",
	}, "\n")

	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	require.Len(t, res.Warnings, 2)
	require.Equal(t, "", res.Rows[0]["Amount"]) // short row padded
	require.Equal(t, "-20.00", res.Rows[1]["Amount"])
}

func TestParse_DuplicateHeaders(t *testing.T) {
	t.Parallel()

	data := "Date,Amount,Amount\n01/15/2024,-4.50,-9.00\n"
	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Equal(t, []string{"Date", "Amount", "Amount_1"}, res.Headers)
	require.Equal(t, "-4.50", res.Rows[0]["Amount"])
	require.Equal(t, "-9.00", res.Rows[0]["Amount_1"])
}

func TestParse_BareQuoteRowIsKept(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"Date,Description,Amount",
		`01/15/2024,Joe"s Diner,-4.50`,
		"01/16/2024,Books,-20.00",
	}, "\n")

	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	require.Equal(t, `Joe"s Diner`, res.Rows[0]["Description"])
	require.Equal(t, "-20.00", res.Rows[1]["Amount"])
}

func TestParse_UnterminatedQuoteDoesNotAbortFile(t *testing.T) {
	t.Parallel()

	data := strings.Join([]string{
		"Date,Description,Amount",
		"01/15/2024,Coffee,-4.50",
		`01/16/2024,"Books,-20.00`,
		"01/17/2024,Rent,-900.00",
	}, "\n")

	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.NotEmpty(t, res.Rows)
	require.Equal(t, "-4.50", res.Rows[0]["Amount"])
}

func TestParse_QuotedFields(t *testing.T) {
	t.Parallel()

	data := "Date,Description,Amount\n01/15/2024,\"Store, The\",\"-1,234.56\"\n"
	res, err := Parse([]byte(data))
	require.NoError(t, err)
	require.Equal(t, "Store, The", res.Rows[0]["Description"])
	require.Equal(t, "-1,234.56", res.Rows[0]["Amount"])
}
