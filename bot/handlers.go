package bot

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
	"github.com/paypay-hub/paypay-admin-bot/errors"
	"github.com/paypay-hub/paypay-admin-bot/paypay"
	"github.com/paypay-hub/paypay-admin-bot/selector"
)

const actionTimeout = 60 * time.Second

const (
	msgDeniedInspect = "This command is restricted to the designated administrator."
	msgDeniedPanel   = "This command is not allowed."
	msgDeniedAction  = "This action is not allowed."
)

// handleInspect serves the full account listing. Only the single
// designated inspection admin may call it.
func (b *Bot) handleInspect(r responder, caller string) {
	if !b.isInspector(caller) {
		b.respond(r.Message(msgDeniedInspect))
		return
	}

	if err := r.Defer(); err != nil {
		log.Warn(err)
		return
	}

	aa, err := b.accounts.List()
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Error("Account listing failed")
		b.respond(r.Follow("Reading accounts from the store failed."))
		return
	}

	if len(aa) == 0 {
		b.respond(r.Follow("No PayPay accounts are registered."))
		return
	}

	b.respond(r.FollowEmbed(inspectEmbed(aa)))
}

// handlePanel renders the operation panel for the currently selected
// account. Buttons are re-checked against the admin set on press, the
// panel gate alone does not authorize the actions.
func (b *Bot) handlePanel(r responder, caller string) {
	if !b.isAdmin(caller) {
		b.respond(r.Message(msgDeniedPanel))
		return
	}

	state := b.selector.Current()
	if state.Status != selector.StatusSelected {
		b.respond(r.Message(fmt.Sprintf("Error: no operable account (state: %s).", state.Status)))
		return
	}

	b.respond(r.Panel(panelEmbed(state.ID), panelRows()))
}

// handleAction routes a button press by its custom id.
func (b *Bot) handleAction(r responder, caller, customID string) {
	action := findPanelAction(customID)
	if action == nil {
		b.respond(r.Message("Unknown action."))
		return
	}

	if !b.isAdmin(caller) {
		b.respond(r.Message(msgDeniedAction))
		return
	}

	if err := r.Defer(); err != nil {
		log.Warn(err)
		return
	}

	action.handle(b, r, action)
}

func (b *Bot) handleSwitch(r responder, _ *panelAction) {
	state, err := b.selector.Advance()
	if err != nil {
		b.respond(r.Follow(fmt.Sprintf("Account switch failed: %s", err)))
		return
	}

	switch state.Status {
	case selector.StatusSelected:
		b.respond(r.Follow(fmt.Sprintf("Switched account. Now operating on:\n**%s**", state.ID)))
	case selector.StatusNoAccount:
		b.respond(r.Follow("No accounts available to switch to."))
	default:
		b.respond(r.Follow(fmt.Sprintf("Error: no operable account (state: %s).", state.Status)))
	}
}

func (b *Bot) handleBalance(r responder, _ *panelAction) {
	a, ok := b.resolveActive(r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
	defer cancel()

	a, err := b.refresher.EnsureFresh(ctx, a)
	if err != nil {
		b.respond(r.Follow(fmt.Sprintf("Token refresh for **%s** failed: %s", a.ID, err)))
		return
	}

	balance, err := b.queryBalance(ctx, a)
	if err != nil && paypay.IsAuthError(err) {
		// Stored token was rejected, rotate once and retry the query.
		// The refresh itself is never retried.
		a, err = b.refresher.Refresh(ctx, a)
		if err != nil {
			b.respond(r.Follow(fmt.Sprintf("Token refresh for **%s** failed: %s", a.ID, err)))
			return
		}
		balance, err = b.queryBalance(ctx, a)
	}
	if err != nil {
		b.respond(r.Follow(fmt.Sprintf("Balance check for **%s** failed: %s", a.ID, err)))
		return
	}

	b.respond(r.Follow(fmt.Sprintf("Balance for **%s**: ¥%d", a.ID, balance)))
}

// handleStub covers the payment actions pending client integration.
// They resolve the active record like the real implementations will,
// then report themselves as not implemented.
func (b *Bot) handleStub(r responder, action *panelAction) {
	a, ok := b.resolveActive(r)
	if !ok {
		return
	}

	b.respond(r.Follow(fmt.Sprintf("**%s** for account **%s** is not implemented yet.", action.label, a.ID)))
}

// resolveActive loads the record behind the current selection and
// reports every failure mode distinctly: no selection, store
// unavailable, and a selected id missing from the table.
func (b *Bot) resolveActive(r responder) (accounts.Account, bool) {
	state := b.selector.Current()
	if state.Status != selector.StatusSelected {
		b.respond(r.Follow(fmt.Sprintf("Error: no operable account (state: %s).", state.Status)))
		return accounts.Account{}, false
	}

	a, err := b.accounts.Details(state.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			b.respond(r.Follow(fmt.Sprintf("No data found for account id **%s**.", state.ID)))
		} else {
			log.WithFields(log.Fields{"account": state.ID, "error": err}).Error("Account lookup failed")
			b.respond(r.Follow("Reading the account from the store failed."))
		}
		return accounts.Account{}, false
	}

	return a, true
}

func (b *Bot) queryBalance(ctx context.Context, a accounts.Account) (int64, error) {
	client, err := b.dial(paypay.Credentials{
		Phone:       a.Phone,
		Pass:        a.Pass,
		DeviceUUID:  a.DeviceUUID,
		ClientUUID:  a.ClientUUID,
		AccessToken: a.AccessToken,
		Proxy:       a.Proxy,
	})
	if err != nil {
		return 0, err
	}
	return client.Balance(ctx)
}

// respond logs delivery failures; there is nothing else to do with
// them, the interaction is already consumed.
func (b *Bot) respond(err error) {
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Warn("Interaction response failed")
	}
}
