package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Size int32  `parquet:"name=size, type=INT32"`
}

func TestParquetTagToKeyValue(t *testing.T) {
	properties, err := ParquetTagToKeyValue("name=name, type=BYTE_ARRAY, convertedtype=UTF8")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "name", "type": "BYTE_ARRAY", "convertedtype": "UTF8"}, properties)

	_, err = ParquetTagToKeyValue("name=name, broken")
	assert.Error(t, err)
}

func TestParquetColumnNames(t *testing.T) {
	names, err := ParquetColumnNames(row{})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "size"}, names)

	names, err = ParquetColumnNames(&row{})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "size"}, names)

	type untagged struct{ Name string }
	_, err = ParquetColumnNames(untagged{})
	assert.Error(t, err)
}
