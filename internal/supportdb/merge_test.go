package supportdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

func TestMergeAddsNewRecords(t *testing.T) {
	db := Parse("1002&67DF=1\n")

	report, err := db.Merge("10DE&1C82=0\n10DE&1C82.info=Pascal\n", DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	assert.Zero(t, report.Skipped())

	rec, ok := db.Lookup("10DE&1C82")
	require.True(t, ok)
	assert.Equal(t, "0", rec.Status)
	assert.Equal(t, "Pascal", rec.Detail)
}

func TestMergeSkipsExistingWithoutOverwrite(t *testing.T) {
	db := Parse("1002&67DF=1\n1002&67DF.info=original\n")

	report, err := db.Merge("1002&67DF=0\n1002&67DF.info=incoming\n", DefaultMergeOptions())
	require.NoError(t, err)

	assert.Zero(t, report.Imported)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, "1002&67DF", report.Skips[0].Ref)
	assert.Equal(t, "already present", report.Skips[0].Reason)

	rec, _ := db.Lookup("1002&67DF")
	assert.Equal(t, "1", rec.Status)
	assert.Equal(t, "original", rec.Detail)
}

func TestMergeOverwrite(t *testing.T) {
	db := Parse("1002&67DF=1\n1002&67DF.info=original\n")

	opts := DefaultMergeOptions()
	opts.Overwrite = true
	report, err := db.Merge("1002&67DF=0\n1002&67DF.info=incoming\n", opts)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	rec, _ := db.Lookup("1002&67DF")
	assert.Equal(t, "0", rec.Status)
	assert.Equal(t, "incoming", rec.Detail)
}

func TestMergeFieldSelection(t *testing.T) {
	db := New()

	opts := DefaultMergeOptions()
	opts.Detail = false
	report, err := db.Merge("10DE&1C82=0\n10DE&1C82.info=Pascal\n10DE&1C82.kext=none needed\n", opts)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	rec, _ := db.Lookup("10DE&1C82")
	assert.Equal(t, "0", rec.Status)
	assert.Equal(t, DefaultDetail, rec.Detail)
	assert.Equal(t, "none needed", rec.Driver)
}

func TestMergeSkipsInvalidLinesWithReport(t *testing.T) {
	db := New()

	report, err := db.Merge("BADLINE\n1002&67DF=1\n", DefaultMergeOptions())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, "line 1", report.Skips[0].Ref)
	assert.Equal(t, "missing separator", report.Skips[0].Reason)
}

func TestMergeFailsFastWhenNotSkippingInvalid(t *testing.T) {
	db := New()

	opts := DefaultMergeOptions()
	opts.SkipInvalid = false
	_, err := db.Merge("BADLINE\n", opts)

	require.Error(t, err)
	assert.Equal(t, errors.DatabaseFormat, errors.GetCode(err))
}

func TestMergeSkipsRecordsWithNoImportableFields(t *testing.T) {
	db := New()

	opts := DefaultMergeOptions()
	opts.Status = false
	report, err := db.Merge("1002&67DF=1\n", opts)
	require.NoError(t, err)

	assert.Zero(t, report.Imported)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, "no importable fields", report.Skips[0].Reason)
}
