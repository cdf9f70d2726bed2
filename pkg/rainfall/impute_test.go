package rainfall_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdm0006/monsoon/pkg/rainfall"
)

func rec(sub string, year, monthNum int, v *float64) rainfall.LongRecord {
	return rainfall.LongRecord{
		Subdivision: sub,
		Year:        year,
		Month:       rainfall.Months[monthNum-1],
		MonthNum:    monthNum,
		Rainfall:    v,
		Season:      rainfall.SeasonOf(monthNum),
	}
}

func TestImputeGroupMean(t *testing.T) {
	recs := []rainfall.LongRecord{
		rec("X", 1901, 1, fp(10)),
		rec("X", 1902, 1, nil),
		rec("X", 1901, 2, fp(4)),
		rec("X", 1902, 2, fp(8)),
		rec("X", 1903, 2, nil),
	}
	filled := rainfall.ImputeGroupMean(recs)
	assert.Equal(t, 2, filled)

	require.NotNil(t, recs[1].Rainfall)
	assert.Equal(t, 10.0, *recs[1].Rainfall, "single observation defines the group mean")
	require.NotNil(t, recs[4].Rainfall)
	assert.Equal(t, 6.0, *recs[4].Rainfall)
}

func TestImputeGroupMeanAllNullGroup(t *testing.T) {
	recs := []rainfall.LongRecord{
		rec("X", 1901, 3, nil),
		rec("X", 1902, 3, nil),
		rec("Y", 1901, 3, fp(7)), // different subdivision, different group
	}
	filled := rainfall.ImputeGroupMean(recs)
	assert.Zero(t, filled)
	assert.Nil(t, recs[0].Rainfall)
	assert.Nil(t, recs[1].Rainfall)
}

func TestImputeGroupMeanIdempotent(t *testing.T) {
	recs := []rainfall.LongRecord{
		rec("X", 1901, 1, fp(10)),
		rec("X", 1902, 1, nil),
	}
	require.Equal(t, 1, rainfall.ImputeGroupMean(recs))
	assert.Zero(t, rainfall.ImputeGroupMean(recs), "second pass finds nothing to fill")
}
