package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
)

func TestSearchCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range searchCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"place", "bus", "subway"}, names)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "search", "place")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchPlace_ListsCandidates(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runAgainst(t, fb, "search", "place", "강남")

	require.NoError(t, err)
	assert.Contains(t, out, "2개 결과")
	assert.Contains(t, out, "[1] 강남역 - 서울 강남구")
	assert.Contains(t, out, "[2] 강남구청")
}

func TestSearchPlace_PickShowsTaxiEstimate(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runAgainst(t, fb, "search", "place", "강남", "--pick", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "강남역")
	assert.Contains(t, out, "23분")
	assert.Contains(t, out, "15,800원")
	assert.Contains(t, out, "(12.3km)")
}

func TestSearchPlace_PickOutOfRange(t *testing.T) {
	fb := newFakeBackend(t)

	_, err := runAgainst(t, fb, "search", "place", "강남", "--pick", "3")

	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSearchPlace_ShortQuerySkipsBackend(t *testing.T) {
	fb := newFakeBackend(t)

	_, err := runAgainst(t, fb, "search", "place", "강")

	assert.ErrorIs(t, err, domain.ErrQueryTooShort)
	assert.Zero(t, fb.requests.Load())
}

func TestSearchPlace_JSON(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runAgainst(t, fb, "search", "place", "강남", "--json")
	require.NoError(t, err)

	var places []domain.Place
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &places))
	require.Len(t, places, 2)
	assert.Equal(t, "강남구청", places[1].Name)
}

func TestSearchPlace_EnglishLocale(t *testing.T) {
	fb := newFakeBackend(t)

	out, err := runAgainst(t, fb, "--locale", "en", "search", "place", "강남")

	require.NoError(t, err)
	assert.Contains(t, out, "2 results")
}

func TestSearchBus(t *testing.T) {
	fb := newFakeBackend(t)

	t.Run("lists stops", func(t *testing.T) {
		out, err := runAgainst(t, fb, "search", "bus", "역삼")

		require.NoError(t, err)
		assert.Contains(t, out, "[1] 역삼역 - #22001")
	})

	t.Run("pick shows arrivals", func(t *testing.T) {
		out, err := runAgainst(t, fb, "search", "bus", "역삼", "--pick", "1")

		require.NoError(t, err)
		assert.Contains(t, out, "역삼역 (#22001)")
		assert.Contains(t, out, "146")
		assert.Contains(t, out, "3분")
		assert.Contains(t, out, "상계동")
	})
}

func TestSearchSubway(t *testing.T) {
	fb := newFakeBackend(t)

	t.Run("lists stations", func(t *testing.T) {
		out, err := runAgainst(t, fb, "search", "subway", "강남")

		require.NoError(t, err)
		assert.Contains(t, out, "[1] 강남 (2호선)")
	})

	t.Run("pick shows departures", func(t *testing.T) {
		out, err := runAgainst(t, fb, "search", "subway", "강남", "--pick", "1")

		require.NoError(t, err)
		assert.Contains(t, out, "평일")
		assert.Contains(t, out, "[상행]")
		assert.Contains(t, out, "08:12 성수 4분후")
		assert.Contains(t, out, "[하행]")
		assert.Contains(t, out, "운행 종료")
	})
}

func TestPick(t *testing.T) {
	items := []string{"a", "b"}

	got, err := pick(items, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = pick(items, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = pick([]string{}, 1)
	assert.ErrorIs(t, err, ErrNoResults)
}
