package invoice_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferSink struct {
	bytes.Buffer
	failAfter int
	writes    int
	closed    int
}

var errDiskFull = errors.New("disk full")

func (s *bufferSink) Write(p []byte) (int, error) {
	s.writes++
	if s.failAfter > 0 && s.writes > s.failAfter {
		return 0, errDiskFull
	}
	return s.Buffer.Write(p)
}

func (s *bufferSink) Close() error {
	s.closed++
	return nil
}

func testOrder(lines int) entities.Order {
	order := entities.Order{
		ID:     "order-1",
		UserID: "user-1",
		Lines: []entities.OrderLine{
			{Quantity: 2, Product: entities.OrderProduct{ID: "p1", Title: "Book", Price: decimal.RequireFromString("10.00")}},
			{Quantity: 3, Product: entities.OrderProduct{ID: "p2", Title: "Pen (blue)", Price: decimal.RequireFromString("5.50")}},
		},
	}
	for range lines {
		order.Lines = append(order.Lines, entities.OrderLine{
			Quantity: 1,
			Product:  entities.OrderProduct{ID: "p3", Title: "Sticker", Price: decimal.Zero},
		})
	}
	return order
}

func TestRenderer_Render(t *testing.T) {
	file, resp := &bufferSink{}, &bufferSink{}

	total, err := invoice.NewRenderer().Render(testOrder(0), file, resp)
	require.NoError(t, err)

	assert.Equal(t, "36.50", total.StringFixed(2))
	assert.Equal(t, file.String(), resp.String())
	assert.Contains(t, resp.String(), "(Invoice) Tj")
	assert.Contains(t, resp.String(), "(Book: 2 x $10.00) Tj")
	assert.Contains(t, resp.String(), `(Pen \(blue\): 3 x $5.50) Tj`)
	assert.Contains(t, resp.String(), "(Total Price: $36.50) Tj")
	assert.Equal(t, 1, file.closed)
	assert.Equal(t, 1, resp.closed)
}

func TestRenderer_Idempotent(t *testing.T) {
	order := testOrder(50)
	r := invoice.NewRenderer()

	first, second := &bufferSink{}, &bufferSink{}
	_, err := r.Render(order, &bufferSink{}, first)
	require.NoError(t, err)
	_, err = r.Render(order, &bufferSink{}, second)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRenderer_SinkFailures(t *testing.T) {
	order := testOrder(400)

	healthy := &bufferSink{}
	_, err := invoice.NewRenderer().Render(order, &bufferSink{}, healthy)
	require.NoError(t, err)
	require.Greater(t, healthy.writes, 2)

	testCases := []struct {
		name      string
		file      *bufferSink
		resp      *bufferSink
		wantSinks []invoice.SinkName
	}{
		{
			name:      "file fails mid-stream",
			file:      &bufferSink{failAfter: 1},
			resp:      &bufferSink{},
			wantSinks: []invoice.SinkName{invoice.SinkFile},
		},
		{
			name:      "response fails mid-stream",
			file:      &bufferSink{},
			resp:      &bufferSink{failAfter: 1},
			wantSinks: []invoice.SinkName{invoice.SinkResponse},
		},
		{
			name:      "both fail",
			file:      &bufferSink{failAfter: 1},
			resp:      &bufferSink{failAfter: 2},
			wantSinks: []invoice.SinkName{invoice.SinkFile, invoice.SinkResponse},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total, err := invoice.NewRenderer().Render(order, tc.file, tc.resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, errDiskFull)
			assert.Equal(t, "36.50", total.StringFixed(2))

			got := sinksOf(err)
			assert.ElementsMatch(t, tc.wantSinks, got)

			if len(tc.wantSinks) == 1 {
				survivor := tc.resp
				if tc.wantSinks[0] == invoice.SinkResponse {
					survivor = tc.file
				}
				assert.Equal(t, healthy.Bytes(), survivor.Bytes())
			}
			assert.Equal(t, 1, tc.file.closed)
			assert.Equal(t, 1, tc.resp.closed)
		})
	}
}

func TestRenderer_FailedFileSink(t *testing.T) {
	openErr := errors.New("permission denied")
	resp := &bufferSink{}

	_, err := invoice.NewRenderer().Render(testOrder(0), invoice.FailedSink(openErr), resp)

	var renderErr *invoice.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, invoice.SinkFile, renderErr.Sink)
	assert.ErrorIs(t, err, openErr)
	assert.Contains(t, resp.String(), "%%EOF")
}

func sinksOf(err error) []invoice.SinkName {
	var sinks []invoice.SinkName
	for _, re := range invoice.SinkErrors(err) {
		sinks = append(sinks, re.Sink)
	}
	return sinks
}

func TestDiscard(t *testing.T) {
	sink := invoice.Discard()
	n, err := sink.Write([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, sink.Close())
	assert.Empty(t, invoice.SinkErrors(nil))
	assert.Empty(t, invoice.SinkErrors(errors.New("plain")))
}

func TestFormat(t *testing.T) {
	line := entities.OrderLine{Quantity: 3, Product: entities.OrderProduct{Title: "Mug", Price: decimal.RequireFromString("7.5")}}
	assert.Equal(t, "Mug: 3 x $7.50", invoice.FormatLine(line))
	assert.Equal(t, "Total Price: $0.30", invoice.FormatTotal(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))))
}
