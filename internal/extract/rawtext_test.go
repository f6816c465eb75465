package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsFromRawTextBasic(t *testing.T) {
	items := itemsFromRawText("Coca Cola\n2.50")

	require.Len(t, items, 1)
	assert.Equal(t, "Coca Cola", items[0].Description)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("2.50")))
}

func TestItemsFromRawTextSummaryAbortsBackwardScan(t *testing.T) {
	// The second price is preceded by a summary keyword: the backward scan
	// aborts and that price yields no item.
	items := itemsFromRawText("Coca Cola\n2.50\nTOTAL\n10.00")

	require.Len(t, items, 1)
	assert.Equal(t, "Coca Cola", items[0].Description)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("2.50")))
}

func TestItemsFromRawTextSkippableLinesAreStepped(t *testing.T) {
	// A currency-only line and a measurement token sit between the item name
	// and the price; both are skipped without stopping the scan.
	items := itemsFromRawText("Apple Juice\nkg\neur\n3.40")

	require.Len(t, items, 1)
	assert.Equal(t, "Apple Juice", items[0].Description)
}

func TestItemsFromRawTextQuantityAnnotations(t *testing.T) {
	items := itemsFromRawText("Bananas\n2 x 1,20\n2.40")

	require.Len(t, items, 1)
	assert.Equal(t, "Bananas\n2 x 1,20", items[0].Description)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("2.40")))
}

func TestItemsFromRawTextPriceWithoutDescriptionDropped(t *testing.T) {
	assert.Empty(t, itemsFromRawText("10.00"))
	assert.Empty(t, itemsFromRawText("TOTAL\n10.00"))
}

func TestItemsFromRawTextDescriptionConsumedOnce(t *testing.T) {
	items := itemsFromRawText("Pretzel\n1.10\n1.20")

	require.Len(t, items, 1)
	assert.Equal(t, "Pretzel", items[0].Description)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("1.10")))
}

func TestIsSummaryLine(t *testing.T) {
	assert.True(t, isSummaryLine("total"))
	assert.True(t, isSummaryLine("mwst / tax 19%"))
	assert.True(t, isSummaryLine("14:32"))
	assert.True(t, isSummaryLine("12.03.2025"))
	assert.True(t, isSummaryLine("  "))
	assert.False(t, isSummaryLine("coca cola"))
}

func TestIsSkippableLine(t *testing.T) {
	assert.True(t, isSkippableLine("eur"))
	assert.True(t, isSkippableLine("**"))
	assert.True(t, isSkippableLine("kg"))
	assert.True(t, isSkippableLine("12"))
	assert.False(t, isSkippableLine("coca cola"))
}
