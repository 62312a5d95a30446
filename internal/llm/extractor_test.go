package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-bot/pennywise/internal/common"
)

// mockClient returns queued responses and counts calls. With hang set it
// blocks until the call's context expires instead.
type mockClient struct {
	responses []ExtractionResponse
	errs      []error
	calls     int
	hang      bool
}

func (m *mockClient) ExtractExpense(ctx context.Context, _ string) (ExtractionResponse, error) {
	i := m.calls
	m.calls++
	if m.hang {
		<-ctx.Done()
		return ExtractionResponse{}, ctx.Err()
	}
	var resp ExtractionResponse
	if i < len(m.responses) {
		resp = m.responses[i]
	}
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	return resp, err
}

func newTestExtractor(client Client) *Extractor {
	return newExtractorWithClient(client, Config{
		RetryDelay: time.Millisecond,
	}, slog.Default())
}

var receiptTime = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func TestExtractEmptyTextSkipsModelCall(t *testing.T) {
	client := &mockClient{}
	extractor := newTestExtractor(client)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := extractor.Extract(context.Background(), text, receiptTime, time.UTC)
		require.ErrorIs(t, err, common.ErrEmptyMessage)
	}
	assert.Equal(t, 0, client.calls, "empty input must not reach the model")
}

func TestExtractSuccess(t *testing.T) {
	client := &mockClient{
		responses: []ExtractionResponse{{
			Amount:      ptr(5.0),
			Category:    "Coffee",
			Description: "coffee",
			When:        "today",
		}},
	}
	extractor := newTestExtractor(client)

	got, err := extractor.Extract(context.Background(), "coffee 5", receiptTime, time.UTC)
	require.NoError(t, err)

	assert.True(t, got.Amount.Equal(decimal.RequireFromString("5")), "amount: %s", got.Amount)
	assert.Equal(t, "coffee", got.Category)
	assert.Equal(t, "coffee", got.Description)
	assert.Equal(t, "2024-01-15", got.DateString())
	assert.Equal(t, 1, client.calls)
}

func TestExtractRoundsAmount(t *testing.T) {
	client := &mockClient{
		responses: []ExtractionResponse{{Amount: ptr(12.346)}},
	}
	extractor := newTestExtractor(client)

	got, err := extractor.Extract(context.Background(), "stuff 12.346", receiptTime, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "12.35", got.Amount.StringFixed(2))
}

func TestExtractUnknownCategoryDefaultsToOther(t *testing.T) {
	client := &mockClient{
		responses: []ExtractionResponse{{Amount: ptr(9.0), Category: "spaceships"}},
	}
	extractor := newTestExtractor(client)

	got, err := extractor.Extract(context.Background(), "rocket fuel 9", receiptTime, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "other", got.Category)
}

func TestExtractMissingAmountIsParseFailure(t *testing.T) {
	tests := []struct {
		amount *float64
		name   string
	}{
		{name: "nil amount", amount: nil},
		{name: "zero amount", amount: ptr(0.0)},
		{name: "negative amount", amount: ptr(-5.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{responses: []ExtractionResponse{{Amount: tt.amount}}}
			extractor := newTestExtractor(client)

			_, err := extractor.Extract(context.Background(), "just saying hi", receiptTime, time.UTC)
			require.ErrorIs(t, err, common.ErrNoAmount)
		})
	}
}

func TestExtractClarification(t *testing.T) {
	client := &mockClient{
		responses: []ExtractionResponse{{
			NeedsClarification:    true,
			ClarificationQuestion: "How much did you spend on groceries?",
		}},
	}
	extractor := newTestExtractor(client)

	_, err := extractor.Extract(context.Background(), "groceries", receiptTime, time.UTC)

	var clarification *common.ClarificationError
	require.ErrorAs(t, err, &clarification)
	assert.Equal(t, "How much did you spend on groceries?", clarification.Question)
}

func TestExtractRetriesOnceOnTransportError(t *testing.T) {
	client := &mockClient{
		errs: []error{errors.New("connection reset"), nil},
		responses: []ExtractionResponse{
			{},
			{Amount: ptr(5.0), Category: "coffee"},
		},
	}
	extractor := newTestExtractor(client)

	got, err := extractor.Extract(context.Background(), "coffee 5", receiptTime, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
	assert.Equal(t, "coffee", got.Category)
}

func TestExtractGivesUpAfterBoundedRetry(t *testing.T) {
	client := &mockClient{
		errs: []error{errors.New("connection reset"), errors.New("connection reset"), errors.New("connection reset")},
	}
	extractor := newTestExtractor(client)

	_, err := extractor.Extract(context.Background(), "coffee 5", receiptTime, time.UTC)
	require.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Equal(t, 2, client.calls, "one original call plus one retry")
}

func TestExtractTimesOutSlowModel(t *testing.T) {
	client := &mockClient{hang: true}
	extractor := newExtractorWithClient(client, Config{
		Timeout:    20 * time.Millisecond,
		RetryDelay: time.Millisecond,
	}, slog.Default())

	start := time.Now()
	_, err := extractor.Extract(context.Background(), "coffee 5", receiptTime, time.UTC)

	require.ErrorIs(t, err, common.ErrExtractionFailed)
	assert.Less(t, time.Since(start), 5*time.Second, "deadline must cut the call short")
	assert.Equal(t, 1, client.calls, "an expired deadline must not be retried")
}

func TestResolveDate(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		loc      *time.Location
		name     string
		when     string
		wantDate string
	}{
		{name: "empty defaults to today", when: "", loc: time.UTC, wantDate: "2024-01-15"},
		{name: "today", when: "today", loc: time.UTC, wantDate: "2024-01-15"},
		{name: "yesterday", when: "yesterday", loc: time.UTC, wantDate: "2024-01-14"},
		{name: "explicit date", when: "2024-01-10", loc: time.UTC, wantDate: "2024-01-10"},
		{name: "garbage falls back to receipt date", when: "a while ago", loc: time.UTC, wantDate: "2024-01-15"},
		// Noon UTC on Jan 15 is still Jan 15 in New York; midnight-thirty is not.
		{name: "timezone shifts the civil date", when: "today", loc: newYork, wantDate: "2024-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDate(tt.when, receiptTime, tt.loc)
			assert.Equal(t, tt.wantDate, got.Format("2006-01-02"))
		})
	}

	t.Run("receipt near UTC midnight uses local date", func(t *testing.T) {
		early := time.Date(2024, 1, 15, 0, 30, 0, 0, time.UTC)
		got := resolveDate("today", early, newYork)
		assert.Equal(t, "2024-01-14", got.Format("2006-01-02"))
	})
}
