package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"sshub/ledger-assist/internal/logging"
	"sshub/ledger-assist/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_LineItems(t *testing.T) {
	items := []models.LineItem{
		{Description: "Café Latte", Amount: decimal.NewFromInt(150)},
		{Description: "Croissant, butter", Amount: decimal.RequireFromString("80.50")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, items))

	assert.Equal(t, "Description,Amount\nCafé Latte,150\n\"Croissant, butter\",80.5\n", buf.String())
}

func TestWriteCSV_EmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV[models.LineItem](&buf, nil))

	assert.Equal(t, "Description,Amount\n", buf.String())
}

func TestWriteCSVFile_Summaries(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "summary.csv")
	rows := []models.AnalysisSummary{
		{
			Source:            "coffee.txt",
			Merchant:          "Starbucks Coffee",
			Date:              "12/03/2025",
			Total:             decimal.NewFromInt(253),
			Items:             3,
			SuggestedCategory: models.CategoryFood,
			Confidence:        100,
		},
	}
	logger := logging.NewMockLogger()

	require.NoError(t, WriteCSVFile(target, rows, logger))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t,
		"Source,Merchant,Date,Total,Items,SuggestedCategory,Confidence\n"+
			"coffee.txt,Starbucks Coffee,12/03/2025,253,3,Food,100\n",
		string(data))
	assert.True(t, logger.HasEntry("INFO", "Successfully wrote CSV file"))

	var back []models.AnalysisSummary
	require.NoError(t, gocsv.UnmarshalBytes(data, &back))
	require.Len(t, back, 1)
	assert.Equal(t, "Starbucks Coffee", back[0].Merchant)
	assert.True(t, back[0].Total.Equal(decimal.NewFromInt(253)))
}

func TestWriteCSVFile_InvalidPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	err := WriteCSVFile(filepath.Join(blocker, "out.csv"), []models.LineItem{}, nil)
	assert.Error(t, err)
}

func TestWriteCSVTo(t *testing.T) {
	items := []models.LineItem{{Description: "Tea", Amount: decimal.NewFromInt(20)}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSVTo(&buf, "", items, nil))
	assert.Equal(t, "Description,Amount\nTea,20\n", buf.String())

	target := filepath.Join(t.TempDir(), "items.csv")
	buf.Reset()
	require.NoError(t, WriteCSVTo(&buf, target, items, nil))
	assert.Empty(t, buf.String())
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Description,Amount\nTea,20\n", string(data))
}
