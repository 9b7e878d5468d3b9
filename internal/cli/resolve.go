package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Hacnine/BestaTechnology-sub001/internal/repository"
)

// resolvePlanID accepts a full plan UUID or a unique prefix of one.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range plans {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range plans {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveBookingID accepts a full booking ID or a unique prefix, searching
// the unclaimed pool and, when an actor is known, their claimed bookings.
func resolveBookingID(ctx context.Context, app *App, input, actorID string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("booking ID is required")
	}

	free, err := app.Bookings.ListUnclaimed(ctx, repository.BookingFilter{})
	if err != nil {
		return "", err
	}
	candidates := free
	if actorID != "" {
		mine, err := app.Bookings.ListMine(ctx, actorID, repository.BookingFilter{})
		if err != nil {
			return "", err
		}
		candidates = append(candidates, mine...)
	}

	for _, b := range candidates {
		if b.ID == input {
			return b.ID, nil
		}
	}

	var matches []string
	for _, b := range candidates {
		if strings.HasPrefix(b.ID, input) {
			matches = append(matches, b.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("booking not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("booking ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
