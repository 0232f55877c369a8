package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Birthday Date  `json:"birthday"`
		Resigned *Date `json:"resigned"`
	}

	out, err := json.Marshal(wrapper{Birthday: NewDate(1990, time.January, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthday":"1990-01-01","resigned":null}`, string(out))

	var in wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"birthday":"2001-12-31","resigned":"2024-02-29"}`), &in))
	assert.Equal(t, "2001-12-31", in.Birthday.String())
	require.NotNil(t, in.Resigned)
	assert.Equal(t, "2024-02-29", in.Resigned.String())

	assert.Error(t, json.Unmarshal([]byte(`{"birthday":"31/12/2001"}`), &in))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2020, time.May, 4, 13, 0, 0, 0, time.Local)))
	assert.Equal(t, "2020-05-04", d.String())

	require.NoError(t, d.Scan("2021-06-07"))
	assert.Equal(t, "2021-06-07", d.String())

	require.NoError(t, d.Scan([]byte("2022-07-08T00:00:00Z")))
	assert.Equal(t, "2022-07-08", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2024, time.March, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate(nil)
	require.NoError(t, err)
	assert.Nil(t, d)

	empty := ""
	d, err = ParseOptionalDate(&empty)
	require.NoError(t, err)
	assert.Nil(t, d)

	raw := "2023-08-15"
	d, err = ParseOptionalDate(&raw)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, raw, d.String())

	bad := "2023-02-30"
	_, err = ParseOptionalDate(&bad)
	assert.Error(t, err)
}
