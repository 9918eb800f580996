package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodylab/trainlog/internal/domain"
)

func TestDecodeEntry_CanonicalRowKeepsNoSource(t *testing.T) {
	e := decodeEntry(map[string]string{
		ColClient:    "Alex",
		ColDate:      "2024-03-04",
		ColWorkout:   "1",
		ColExercise:  "Squat",
		ColRPE:       "7",
		ColCompleted: "TRUE",
	})

	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), e.Date)
	assert.Equal(t, 7, e.RPE)
	assert.True(t, e.Completed)
	assert.Nil(t, e.Source)
}

func TestDecodeEntry_MalformedCellsAreCarried(t *testing.T) {
	raw := map[string]string{
		ColDate:      "someday",
		ColRPE:       "hard",
		ColCompleted: "",
		"Coach Note": "watch knees",
	}
	e := decodeEntry(raw)

	assert.False(t, e.HasDate())
	assert.Equal(t, 0, e.RPE)
	for col, v := range raw {
		assert.Equal(t, v, encodeText(e, col), col)
	}
}

func TestDecodeEntry_FloatRPE(t *testing.T) {
	e := decodeEntry(map[string]string{ColRPE: "8.0"})
	assert.Equal(t, 8, e.RPE)
	assert.Equal(t, "8.0", encodeText(e, ColRPE))

	e = decodeEntry(map[string]string{ColRPE: "7.5"})
	assert.Equal(t, 0, e.RPE)
}

func TestHistoryHeader_AppendsExtrasInFirstSeenOrder(t *testing.T) {
	h := domain.ClientHistory{
		{Source: map[string]string{"Zeta": "1", "Alpha": "2"}},
		{Source: map[string]string{"Beta": "3", "Alpha": "4", ColRPE: "x"}},
	}
	header := historyHeader(h)

	require.Len(t, header, len(HistoryColumns)+3)
	assert.Equal(t, []string{"Alpha", "Zeta", "Beta"}, header[len(HistoryColumns):])
}

func TestEncodeCell_TypedValues(t *testing.T) {
	e := domain.LogEntry{RPE: 6, Completed: true}
	assert.Equal(t, 6, encodeCell(e, ColRPE))
	assert.Equal(t, true, encodeCell(e, ColCompleted))
	assert.Equal(t, "", encodeCell(domain.LogEntry{}, ColRPE))
}

func TestDecodeEntry_AbsentTypedColumnsStayEmpty(t *testing.T) {
	e := decodeEntry(map[string]string{ColExercise: "Squat", ColNotes: "old"})

	assert.False(t, e.Completed)
	assert.Equal(t, "", encodeCell(e, ColCompleted))
	assert.Equal(t, "", encodeCell(e, ColRPE))
	assert.Equal(t, "", encodeText(e, ColDate))
	assert.Equal(t, "", encodeText(e, ColCompleted))
}
