package invoice

import (
	"bufio"
	"fmt"
	"io"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/pdf"
	"github.com/shopspring/decimal"
)

// chunkSize ограничивает объем данных в памяти между генератором и приемниками.
const chunkSize = 4 << 10

const separator = "---------------------"

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render генерирует PDF счета и одновременно пишет его в file и response.
// Оба приемника закрываются в любом случае. Ошибка каждого приемника возвращается
// как *RenderError; итог считается независимо от успеха записи.
func (r *Renderer) Render(order entities.Order, file, response Sink) (decimal.Decimal, error) {
	total := order.Total()

	out := newFanout(
		&target{name: SinkFile, w: file},
		&target{name: SinkResponse, w: response},
	)

	bw := bufio.NewWriterSize(out, chunkSize)
	writeErr := writeDocument(bw, order, total)
	if writeErr == nil {
		writeErr = bw.Flush()
	}

	if err := out.Close(); err != nil {
		return total, err
	}
	if writeErr != nil {
		return total, fmt.Errorf("render invoice: %w", writeErr)
	}
	return total, nil
}

func writeDocument(w io.Writer, order entities.Order, total decimal.Decimal) error {
	doc := pdf.New(w)

	doc.SetFontSize(26)
	if err := doc.TextUnderlined("Invoice"); err != nil {
		return err
	}

	doc.SetFontSize(14)
	lines := make([]string, 0, len(order.Lines)+2)
	lines = append(lines, separator)
	for _, l := range order.Lines {
		lines = append(lines, FormatLine(l))
	}
	lines = append(lines, separator)
	for _, s := range lines {
		if err := doc.Text(s); err != nil {
			return err
		}
	}

	doc.SetFontSize(20)
	if err := doc.Text(FormatTotal(total)); err != nil {
		return err
	}
	return doc.Close()
}

func FormatLine(l entities.OrderLine) string {
	return fmt.Sprintf("%s: %d x $%s", l.Product.Title, l.Quantity, l.Product.Price.StringFixed(2))
}

func FormatTotal(total decimal.Decimal) string {
	return "Total Price: $" + total.StringFixed(2)
}
