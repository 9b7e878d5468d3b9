package formatter

import (
	"strings"

	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// FormatBookings renders a fabric booking pool view.
func FormatBookings(title string, bookings []*domain.FabricBookingStage) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n")

	if len(bookings) == 0 {
		b.WriteString(Dim("No bookings.") + "\n")
		return b.String()
	}

	headers := []string{"ID", "STYLE", "PLANNED", "ACTUAL", "RECEIVE", "OWNER"}
	rows := make([][]string, 0, len(bookings))
	for _, bk := range bookings {
		owner := Dim("--")
		if bk.OwnerID != nil {
			owner = StyleBlue.Render(*bk.OwnerID)
		}
		rows = append(rows, []string{
			Dim(shortID(bk.ID)),
			Bold(bk.StyleName),
			dateCell(bk.CompleteDate),
			dateCell(bk.ActualCompleteDate),
			dateCell(bk.ReceiveDate),
			owner,
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
