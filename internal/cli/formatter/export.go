package formatter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
)

// csvHeader is the stable column order of the board export.
var csvHeader = []string{
	"plan_id",
	"style_name",
	"merchandiser_id",
	"sample_sending_date",
	"cad_planned", "cad_actual", "cad_status",
	"booking_planned", "booking_actual", "booking_status",
	"sample_planned", "sample_actual", "sample_status",
	"tracking_date",
	"lead_time_days",
	"risk",
}

// WriteBoardCSV writes the dashboard as CSV. Status columns carry the same
// label bytes the styled board shows, without the styling.
func WriteBoardCSV(w io.Writer, views []service.PlanStatusView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, v := range views {
		record := []string{
			v.PlanID,
			v.StyleName,
			v.MerchandiserID,
			v.SampleSendingDate.Format(dateutil.DateLayout),
			csvDate(v.Cad.Planned), csvDate(v.Cad.Actual), v.Cad.Label,
			csvDate(v.Booking.Planned), csvDate(v.Booking.Actual), v.Booking.Label,
			csvDate(v.Sample.Planned), csvDate(v.Sample.Actual), v.Sample.Label,
			csvDate(v.TrackingDate),
			strconv.Itoa(v.LeadTimeDays),
			string(v.Risk),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", v.PlanID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(dateutil.DateLayout)
}
