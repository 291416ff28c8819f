package bank

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	p, err := Lookup("chase")
	require.NoError(t, err)
	require.Equal(t, "Chase", p.Name)
	require.Equal(t, DebitsNegative, p.SignConvention)
	require.NotEmpty(t, p.DateFormats)

	_, err = Lookup("monzo")
	require.ErrorIs(t, err, ErrUnknownInstitution)
}

func TestSignConventions(t *testing.T) {
	t.Parallel()

	positive := []string{"bankofamerica", "capitalone", "amex"}
	for _, key := range positive {
		p, err := Lookup(key)
		require.NoError(t, err)
		require.Equal(t, DebitsPositive, p.SignConvention, key)
	}
	negative := []string{"chase", "wellsfargo"}
	for _, key := range negative {
		p, err := Lookup(key)
		require.NoError(t, err)
		require.Equal(t, DebitsNegative, p.SignConvention, key)
	}
}

func TestColumnPatterns(t *testing.T) {
	t.Parallel()

	chase, err := Lookup("chase")
	require.NoError(t, err)
	require.True(t, chase.Columns.Date.MatchString("Posting Date"))
	require.True(t, chase.Columns.Date.MatchString("Transaction Date"))
	require.True(t, chase.Columns.Description.MatchString("Description"))
	require.True(t, chase.Columns.Amount.MatchString("Amount"))
	require.True(t, chase.Columns.Memo.MatchString("Details"))
	require.False(t, chase.Columns.Date.MatchString("Balance"))

	capone, err := Lookup("capitalone")
	require.NoError(t, err)
	require.True(t, capone.Columns.Description.MatchString("Merchant Name"))
	require.True(t, capone.Columns.Amount.MatchString("Debit"))
}

func TestGenericColumns(t *testing.T) {
	t.Parallel()

	require.True(t, GenericColumns.Description.MatchString("Payee"))
	require.True(t, GenericColumns.Description.MatchString("Vendor"))
	require.True(t, GenericColumns.Date.MatchString("Posted"))
	require.True(t, GenericColumns.Memo.MatchString("Notes"))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	keys := Keys()
	require.Len(t, keys, 5)
	require.Equal(t, []string{"amex", "bankofamerica", "capitalone", "chase", "wellsfargo"}, keys)
}

func TestValidAccountKind(t *testing.T) {
	t.Parallel()

	require.True(t, ValidAccountKind(AccountChecking))
	require.True(t, ValidAccountKind(AccountCredit))
	require.False(t, ValidAccountKind(AccountKind("savings")))
}
