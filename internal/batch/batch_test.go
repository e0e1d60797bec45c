package batch_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fhscan/internal/batch"
	"github.com/raysh454/fhscan/internal/catalog"
	"github.com/raysh454/fhscan/internal/scanner"
	"github.com/raysh454/fhscan/internal/testutil"
)

func newRunner(conc int) *batch.Runner {
	s := scanner.New(catalog.MustDefault(), nil)
	return batch.NewRunner(s, conc, &testutil.DummyLogger{})
}

// ─── Item decoding ───────────────────────────────────────────────────────

func TestItem_UnmarshalStringOrObject(t *testing.T) {
	t.Parallel()
	var items []batch.Item
	err := json.Unmarshal([]byte(`["No kids", {"id": "L-2", "text": "Master suite"}, null]`), &items)
	require.NoError(t, err)
	assert.Equal(t, []batch.Item{
		{Text: "No kids"},
		{ID: "L-2", Text: "Master suite"},
		{},
	}, items)
}

func TestItem_UnmarshalRejectsOtherShapes(t *testing.T) {
	t.Parallel()
	var it batch.Item
	assert.Error(t, json.Unmarshal([]byte(`42`), &it))
}

func TestReadItems(t *testing.T) {
	t.Parallel()
	items, err := batch.ReadItems(strings.NewReader(`{"items": ["a", {"id": "x", "text": "b"}]}`))
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = batch.ReadItems(strings.NewReader(` ["a"] `))
	require.NoError(t, err)
	assert.Equal(t, batch.Texts("a"), items)

	_, err = batch.ReadItems(strings.NewReader(`nope`))
	assert.Error(t, err)
}

// ─── Runner ──────────────────────────────────────────────────────────────

func TestRun_PreservesOrderAndIDs(t *testing.T) {
	t.Parallel()
	var items []batch.Item
	for i := 0; i < 60; i++ {
		text := "Charming cottage."
		switch i % 3 {
		case 1:
			text = "No children allowed."
		case 2:
			text = "Master bedroom and man cave."
		}
		items = append(items, batch.Item{ID: fmt.Sprintf("L-%02d", i), Text: text})
	}

	res, err := newRunner(4).Run(context.Background(), items, "", nil)
	require.NoError(t, err)
	require.Len(t, res, len(items))

	for i, r := range res {
		assert.Equal(t, items[i].ID, r.ID)
		switch i % 3 {
		case 0:
			assert.True(t, r.IsCompliant)
		case 1:
			assert.True(t, r.HasHighRisk)
		case 2:
			assert.Equal(t, 2, r.LowCount)
		}
	}
}

func TestRun_MatchesSequentialQuickScan(t *testing.T) {
	t.Parallel()
	s := scanner.New(catalog.MustDefault(), nil)
	texts := []string{"No Section 8.", "Adults only", "", "Perfect for couples"}
	res, err := batch.NewRunner(s, 2, nil).Run(context.Background(), batch.Texts(texts...), "CA", nil)
	require.NoError(t, err)
	for i, text := range texts {
		assert.Equal(t, s.QuickScan(text, "CA"), res[i])
	}
}

func TestRun_ReportsProgress(t *testing.T) {
	t.Parallel()
	var (
		mu    sync.Mutex
		calls []int
	)
	_, err := newRunner(3).Run(context.Background(), batch.Texts("a", "b", "c", "d", "e"), "", func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 5, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, calls)
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := newRunner(1).Run(ctx, batch.Texts("No kids", "No kids"), "", nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Len(t, res, 2)
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()
	res, err := newRunner(0).Run(context.Background(), nil, "", nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}
