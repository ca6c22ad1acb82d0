package rates_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-fxrates/internal/rates"
)

const liveBody = `{"success":true,"terms":"https:\/\/currencylayer.com\/terms","privacy":"https:\/\/currencylayer.com\/privacy","timestamp":1740470645,"source":"USD","quotes":{"USDTHB":31.17037,"USDJPY":104.728996}}`

func TestParseAll_TwoCurrencies(t *testing.T) {
	table := rates.ParseAll(`"USDTHB":31.17037,"USDJPY":104.728996`)

	require.Equal(t, 2, table.Len())

	thb, ok := table.Rate("THB")
	require.True(t, ok)
	assert.Equal(t, 31.17037, thb)

	jpy, ok := table.Rate("JPY")
	require.True(t, ok)
	assert.Equal(t, 104.728996, jpy)
}

func TestParseAll_FullResponseBody(t *testing.T) {
	table := rates.ParseAll(liveBody)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"JPY", "THB"}, table.Codes())
}

func TestParseAll_EmptyInput(t *testing.T) {
	table := rates.ParseAll("")

	require.NotNil(t, table)
	assert.Equal(t, 0, table.Len())
}

func TestParseAll_NoQuotePairs(t *testing.T) {
	table := rates.ParseAll(`{"success":false,"error":{"code":104}}`)

	assert.Equal(t, 0, table.Len())
}

func TestParseAll_AdjacentPairsWithoutSeparator(t *testing.T) {
	table := rates.ParseAll(`"USDAAA":1.5"USDBBB":2.5`)

	require.Equal(t, 2, table.Len())

	aaa, _ := table.Rate("AAA")
	bbb, _ := table.Rate("BBB")
	assert.Equal(t, 1.5, aaa)
	assert.Equal(t, 2.5, bbb)
}

func TestParseAll_SkipsNonNumericValue(t *testing.T) {
	table := rates.ParseAll(`"USDXXX":abc,"USDYYY":2.5`)

	require.Equal(t, 1, table.Len())

	yyy, ok := table.Rate("YYY")
	require.True(t, ok)
	assert.Equal(t, 2.5, yyy)
}

func TestParseAll_SkipsIntegerValue(t *testing.T) {
	table := rates.ParseAll(`"USDXXX":42,"USDYYY":2.5`)

	require.Equal(t, 1, table.Len())
	_, ok := table.Rate("XXX")
	assert.False(t, ok)
}

func TestParseAll_SkipsBareFraction(t *testing.T) {
	table := rates.ParseAll(`"USDXXX":.5,"USDYYY":2.5`)

	require.Equal(t, 1, table.Len())
	_, ok := table.Rate("XXX")
	assert.False(t, ok)
}

func TestParseAll_SkipsOverflowingLiteral(t *testing.T) {
	huge := strings.Repeat("9", 400) + ".0"
	table := rates.ParseAll(`"USDXXX":` + huge + `,"USDYYY":2.5`)

	require.Equal(t, 1, table.Len())
	_, ok := table.Rate("XXX")
	assert.False(t, ok)

	yyy, _ := table.Rate("YYY")
	assert.Equal(t, 2.5, yyy)
}

func TestParseAll_LastDuplicateWins(t *testing.T) {
	table := rates.ParseAll(`"USDTHB":31.17037,"USDTHB":32.5`)

	require.Equal(t, 1, table.Len())

	thb, _ := table.Rate("THB")
	assert.Equal(t, 32.5, thb)
}

func TestParseAll_WhitespaceAfterColon(t *testing.T) {
	table := rates.ParseAll(`"USDTHB":  31.17037`)

	thb, ok := table.Rate("THB")
	require.True(t, ok)
	assert.Equal(t, 31.17037, thb)
}

func TestParseOne_Found(t *testing.T) {
	assert.Equal(t, 31.17037, rates.ParseOne("THB", liveBody))
	assert.Equal(t, 104.728996, rates.ParseOne("JPY", liveBody))
}

func TestParseOne_Missing(t *testing.T) {
	assert.Equal(t, 0.0, rates.ParseOne("EUR", liveBody))
}

func TestParseOne_NormalizesCode(t *testing.T) {
	assert.Equal(t, 31.17037, rates.ParseOne("thb", liveBody))
}

func TestParseOne_BadCode(t *testing.T) {
	assert.Equal(t, 0.0, rates.ParseOne("BATH", liveBody))
	assert.Equal(t, 0.0, rates.ParseOne("", liveBody))
}

func TestParseOne_FirstMatchWins(t *testing.T) {
	assert.Equal(t, 31.17037, rates.ParseOne("THB", `"USDTHB":31.17037,"USDTHB":32.5`))
}

func TestNewParser_CustomBase(t *testing.T) {
	parser, err := rates.NewParser("eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", parser.Base())

	table := parser.ParseAll(`"EURUSD":1.0842,"EURGBP":0.8311,"USDTHB":31.17037`)

	require.Equal(t, 2, table.Len())

	usd, _ := table.Rate("USD")
	assert.Equal(t, 1.0842, usd)
	_, ok := table.Rate("THB")
	assert.False(t, ok)
}

func TestNewParser_BadBase(t *testing.T) {
	_, err := rates.NewParser("US")
	require.Error(t, err)

	_, err = rates.NewParser("123")
	require.Error(t, err)
}
