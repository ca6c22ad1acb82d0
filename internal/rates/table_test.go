package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-fxrates/internal/rates"
)

func TestTable_CodesSorted(t *testing.T) {
	table := rates.Table{"THB": 31.17037, "EUR": 0.92, "JPY": 104.728996}

	assert.Equal(t, []string{"EUR", "JPY", "THB"}, table.Codes())
}

func TestNormalizeCode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"USD", "USD"},
		{"usd", "USD"},
		{" thb ", "THB"},
	} {
		got, err := rates.NormalizeCode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, in := range []string{"", "US", "USDX", "12E", "U$D", "дол"} {
		_, err := rates.NormalizeCode(in)
		assert.Error(t, err, "code %q", in)
	}
}

func TestTable_CrossDirect(t *testing.T) {
	table := rates.Table{"THB": 25.0, "JPY": 100.0}

	rate, err := table.Cross("USD", "USD", "THB")
	require.NoError(t, err)
	assert.Equal(t, 25.0, rate)
}

func TestTable_CrossInverse(t *testing.T) {
	table := rates.Table{"THB": 25.0}

	rate, err := table.Cross("USD", "THB", "USD")
	require.NoError(t, err)
	assert.Equal(t, 0.04, rate)
}

func TestTable_CrossDerived(t *testing.T) {
	table := rates.Table{"THB": 25.0, "JPY": 100.0}

	rate, err := table.Cross("USD", "THB", "JPY")
	require.NoError(t, err)
	assert.Equal(t, 4.0, rate)
}

func TestTable_CrossSameCurrency(t *testing.T) {
	rate, err := rates.Table{}.Cross("USD", "THB", "THB")
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)
}

func TestTable_CrossMissingCode(t *testing.T) {
	table := rates.Table{"THB": 25.0}

	_, err := table.Cross("USD", "THB", "JPY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JPY")
}

func TestTable_CrossZeroRate(t *testing.T) {
	table := rates.Table{"XAU": 0.0, "THB": 25.0}

	_, err := table.Cross("USD", "XAU", "THB")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero")
}
