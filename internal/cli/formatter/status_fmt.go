package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/dateutil"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
	"github.com/Hacnine/BestaTechnology-sub001/internal/service"
)

// FormatBoard renders the dashboard: one row per plan, one column per stage,
// worst risk first.
func FormatBoard(views []service.PlanStatusView) string {
	var b strings.Builder
	b.WriteString(Header("Time & Action Board"))
	b.WriteString("\n")

	if len(views) == 0 {
		b.WriteString(Dim("No plans yet.") + "\n")
		return b.String()
	}

	headers := []string{"ID", "STYLE", "CAD", "BOOKING", "SAMPLE", "SHIP", "LEAD", "RISK"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			Dim(v.DisplayID),
			Bold(v.StyleName),
			stageCell(v.Cad),
			stageCell(v.Booking),
			stageCell(v.Sample),
			StyleFg.Render(v.SampleSendingDate.Format(dateutil.DateLayout)),
			leadTimeCell(v.LeadTimeDays),
			RiskIndicator(v.Risk),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(boardSummary(views))
	return b.String()
}

func stageCell(s service.StageStatusView) string {
	return ScheduleStyle(s.Status).Render(s.Label)
}

func leadTimeCell(days int) string {
	label := fmt.Sprintf("%dd", days)
	switch {
	case days < 0:
		return StyleRed.Render(label)
	case days <= 7:
		return StyleYellow.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

func boardSummary(views []service.PlanStatusView) string {
	var critical, atRisk, onTrack int
	for _, v := range views {
		switch v.Risk {
		case domain.RiskCritical:
			critical++
		case domain.RiskAtRisk:
			atRisk++
		default:
			onTrack++
		}
	}
	return fmt.Sprintf("%s, %s, %s\n",
		StyleRed.Render(fmt.Sprintf("%d Critical", critical)),
		StyleYellow.Render(fmt.Sprintf("%d At Risk", atRisk)),
		StyleGreen.Render(fmt.Sprintf("%d On Track", onTrack)))
}

// FormatPlanStatus renders the single-plan detail view.
func FormatPlanStatus(v *service.PlanStatusView) string {
	var b strings.Builder
	b.WriteString(Header(v.StyleName))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s\n",
		Dim("Plan:"), v.DisplayID,
		Dim("Merchandiser:"), v.MerchandiserID,
		RiskIndicator(v.Risk)))
	b.WriteString(fmt.Sprintf("%s %s (%s)\n",
		Dim("Sample sending:"),
		v.SampleSendingDate.Format(dateutil.DateLayout),
		leadTimeCell(v.LeadTimeDays)))
	b.WriteString("\n")

	headers := []string{"STAGE", "PLANNED", "ACTUAL", "STATUS"}
	rows := [][]string{
		stageRow(v.Cad),
		stageRow(v.Booking),
		stageRow(v.Sample),
	}
	b.WriteString(RenderTable(headers, rows))

	switch {
	case v.TrackingDate != nil:
		b.WriteString("\n" + Dim("DHL tracking:") + " " + v.TrackingDate.Format(dateutil.DateLayout) + "\n")
	case v.ReadyForTracking:
		b.WriteString("\n" + StyleGreen.Render("Ready for DHL tracking.") + "\n")
	default:
		b.WriteString("\n" + Dim("DHL tracking pending upstream stages.") + "\n")
	}
	return b.String()
}

func stageRow(s service.StageStatusView) []string {
	return []string{
		StyleFg.Render(s.Stage.DisplayName()),
		dateCell(s.Planned),
		dateCell(s.Actual),
		stageCell(s),
	}
}

func dateCell(d *time.Time) string {
	if d == nil {
		return Dim("--")
	}
	return StyleFg.Render(d.Format(dateutil.DateLayout))
}
