package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

type fakeInventory struct {
	items []model.InventoryItem
	err   error
}

func (f *fakeInventory) List(_ context.Context) ([]model.InventoryItem, error) {
	return f.items, f.err
}

func (f *fakeInventory) SearchByName(context.Context, string) ([]model.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventory) FindByProductID(context.Context, string) (*model.InventoryItem, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeInventory) Create(context.Context, model.InventoryItem) error { return nil }

func (f *fakeInventory) Patch(context.Context, string, map[string]string) error { return nil }

func (f *fakeInventory) Delete(context.Context, string) error { return nil }

type fakePreferences struct {
	prefs []model.UserPreference
}

func (f *fakePreferences) FindByEmail(context.Context, string) (*model.UserPreference, error) {
	return nil, repository.ErrNotFound
}

func (f *fakePreferences) List(_ context.Context) ([]model.UserPreference, error) {
	return f.prefs, nil
}

func (f *fakePreferences) Create(context.Context, model.UserPreference) error { return nil }

func (f *fakePreferences) Update(context.Context, string, model.UserPreference) error { return nil }

type mail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []mail
	err  error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, mail{to, subject, body})
	return nil
}

func lowItem(id string, stock, min int) model.InventoryItem {
	return model.InventoryItem{
		ProductID:    id,
		ProductName:  "Item " + id,
		CurrentStock: stock,
		MinLevel:     min,
		Status:       model.DeriveStatus(stock, min),
	}
}

func TestRunOnceMailsOptedInUsersOnly(t *testing.T) {
	inv := &fakeInventory{items: []model.InventoryItem{
		lowItem("prod_1", 2, 10),
		lowItem("prod_2", 50, 10), // healthy, excluded
	}}
	prefs := &fakePreferences{prefs: []model.UserPreference{
		{Email: "jess@cafe.test", EmailNotifications: true},
		{Email: "sam@cafe.test", EmailNotifications: false},
	}}
	mailer := &fakeMailer{}
	w := NewStockAlertWorker(inv, prefs, mailer, time.Minute)

	w.RunOnce(context.Background())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jess@cafe.test", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Subject, "1 item(s)")
	assert.Contains(t, mailer.sent[0].Body, "prod_1")
	assert.NotContains(t, mailer.sent[0].Body, "prod_2")
}

func TestRunOnceDoesNotRepeatAlerts(t *testing.T) {
	inv := &fakeInventory{items: []model.InventoryItem{lowItem("prod_1", 0, 10)}}
	prefs := &fakePreferences{prefs: []model.UserPreference{
		{Email: "jess@cafe.test", EmailNotifications: true},
	}}
	mailer := &fakeMailer{}
	w := NewStockAlertWorker(inv, prefs, mailer, time.Minute)

	w.RunOnce(context.Background())
	w.RunOnce(context.Background())

	assert.Len(t, mailer.sent, 1)
}

func TestRunOnceRealertsAfterRecovery(t *testing.T) {
	inv := &fakeInventory{items: []model.InventoryItem{lowItem("prod_1", 2, 10)}}
	prefs := &fakePreferences{prefs: []model.UserPreference{
		{Email: "jess@cafe.test", EmailNotifications: true},
	}}
	mailer := &fakeMailer{}
	w := NewStockAlertWorker(inv, prefs, mailer, time.Minute)

	w.RunOnce(context.Background())
	require.Len(t, mailer.sent, 1)

	// Stock recovers, then dips again: the item alerts a second time.
	inv.items = []model.InventoryItem{lowItem("prod_1", 40, 10)}
	w.RunOnce(context.Background())
	inv.items = []model.InventoryItem{lowItem("prod_1", 1, 10)}
	w.RunOnce(context.Background())

	assert.Len(t, mailer.sent, 2)
}

func TestRunOnceSkipsMarkingWhenNoRecipients(t *testing.T) {
	inv := &fakeInventory{items: []model.InventoryItem{lowItem("prod_1", 2, 10)}}
	prefs := &fakePreferences{}
	mailer := &fakeMailer{}
	w := NewStockAlertWorker(inv, prefs, mailer, time.Minute)

	w.RunOnce(context.Background())
	assert.Empty(t, mailer.sent)

	// A user opts in later and still gets told about the standing alert.
	prefs.prefs = []model.UserPreference{{Email: "jess@cafe.test", EmailNotifications: true}}
	w.RunOnce(context.Background())
	assert.Len(t, mailer.sent, 1)
}

func TestRunOnceRetriesAfterSendFailure(t *testing.T) {
	inv := &fakeInventory{items: []model.InventoryItem{lowItem("prod_1", 2, 10)}}
	prefs := &fakePreferences{prefs: []model.UserPreference{
		{Email: "jess@cafe.test", EmailNotifications: true},
	}}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	w := NewStockAlertWorker(inv, prefs, mailer, time.Minute)

	w.RunOnce(context.Background())
	assert.Empty(t, mailer.sent)

	mailer.err = nil
	w.RunOnce(context.Background())
	assert.Len(t, mailer.sent, 1)
}
