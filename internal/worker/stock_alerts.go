package worker

// stock_alerts.go
// Background goroutine that periodically scans inventory for items at or
// below their minimum level and mails a digest to users who opted in to
// email notifications. Polling is the only background activity in this
// service; it races with operator mutations and simply picks up the new
// state on the next tick.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

// Sender abstracts the mailer so tests can capture outgoing digests.
type Sender interface {
	Send(to, subject, body string) error
}

// StockAlertWorker mails low-stock digests on a fixed interval.
type StockAlertWorker struct {
	inventory   repository.InventoryRepository
	preferences repository.PreferencesRepository
	mailer      Sender
	interval    time.Duration

	// alerted remembers product ids already included in a digest, so an item
	// stuck at LOW does not generate mail every tick. Cleared per item once
	// it recovers. In-memory only — a restart re-alerts, which is acceptable.
	alerted map[string]bool
}

func NewStockAlertWorker(inventory repository.InventoryRepository, preferences repository.PreferencesRepository, mailer Sender, interval time.Duration) *StockAlertWorker {
	return &StockAlertWorker{
		inventory:   inventory,
		preferences: preferences,
		mailer:      mailer,
		interval:    interval,
		alerted:     make(map[string]bool),
	}
}

// Start launches the polling goroutine. It respects the context for graceful
// shutdown.
func (w *StockAlertWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		log.Info().Dur("interval", w.interval).Msg("stock_alerts: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("stock_alerts: shutting down")
				return
			case <-ticker.C:
				w.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce performs a single poll. Every failure is logged and swallowed; the
// next tick retries naturally.
func (w *StockAlertWorker) RunOnce(ctx context.Context) {
	items, err := w.inventory.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stock_alerts: failed to list inventory")
		return
	}

	var fresh []model.InventoryItem
	current := make(map[string]bool)
	for _, it := range items {
		if it.Status != model.StatusLow && it.Status != model.StatusOutOfStock {
			continue
		}
		current[it.ProductID] = true
		if !w.alerted[it.ProductID] {
			fresh = append(fresh, it)
		}
	}
	// Forget recovered items so they re-alert if they dip again.
	for id := range w.alerted {
		if !current[id] {
			delete(w.alerted, id)
		}
	}

	if len(fresh) == 0 {
		return
	}

	recipients, err := w.optedInEmails(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stock_alerts: failed to list preferences")
		return
	}
	if len(recipients) == 0 {
		// Nobody to tell — do not mark items alerted, a user may opt in later.
		return
	}

	subject, body := digest(fresh)
	sent := 0
	for _, to := range recipients {
		if err := w.mailer.Send(to, subject, body); err != nil {
			log.Error().Err(err).Str("to", to).Msg("stock_alerts: send failed")
			continue
		}
		sent++
	}
	if sent == 0 {
		return
	}

	for _, it := range fresh {
		w.alerted[it.ProductID] = true
	}
	log.Info().Int("items", len(fresh)).Int("recipients", sent).Msg("stock_alerts: digest sent")
}

func (w *StockAlertWorker) optedInEmails(ctx context.Context) ([]string, error) {
	prefs, err := w.preferences.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range prefs {
		if p.EmailNotifications {
			out = append(out, p.Email)
		}
	}
	return out, nil
}

func digest(items []model.InventoryItem) (subject, body string) {
	subject = fmt.Sprintf("Low stock alert: %d item(s) need attention", len(items))
	var b strings.Builder
	b.WriteString("The following inventory items are low or out of stock:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s (%s): %d on hand, minimum %d [%s]\n",
			it.ProductName, it.ProductID, it.CurrentStock, it.MinLevel, it.Status)
	}
	return subject, b.String()
}
