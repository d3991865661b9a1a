package bot

import (
	"github.com/bwmarrin/discordgo"
)

const (
	cmdPanel   = "paypay"
	cmdInspect = "paypay-accounts"
)

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdInspect,
			Description: "List all registered PayPay accounts (restricted)",
		},
		{
			Name:        cmdPanel,
			Description: "Show the PayPay operation panel",
		},
	}
}

// panelAction is one button on the operation panel. The custom id is
// the stable routing key, handlers are looked up in this table rather
// than generated per message.
type panelAction struct {
	customID string
	label    string
	style    discordgo.ButtonStyle
	handle   func(b *Bot, r responder, a *panelAction)
}

// Panel layout, in display order. Custom ids are part of the wire
// contract with already-rendered panels and must stay stable.
var panelActions = []panelAction{
	{"bank_send_btn", "💰 Bank transfer", discordgo.SuccessButton, (*Bot).handleStub},
	{"invoice_btn", "📱 Invoice payment", discordgo.SuccessButton, (*Bot).handleStub},
	{"send_invoice_btn", "📩 Pay invoice link", discordgo.SuccessButton, (*Bot).handleStub},
	{"direct_send_btn", "💳 Direct transfer", discordgo.SuccessButton, (*Bot).handleStub},
	{"send_btn", "📤 Create transfer link", discordgo.SuccessButton, (*Bot).handleStub},
	{"receive_btn", "📥 Receive link", discordgo.SecondaryButton, (*Bot).handleStub},
	{"cancel_btn", "❌ Cancel link", discordgo.DangerButton, (*Bot).handleStub},
	{"check_balance_btn", "✅ Check balance", discordgo.SecondaryButton, (*Bot).handleBalance},
	{"refresh_btn", "🔄 Switch account", discordgo.SecondaryButton, (*Bot).handleSwitch},
}

func findPanelAction(customID string) *panelAction {
	for i := range panelActions {
		if panelActions[i].customID == customID {
			return &panelActions[i]
		}
	}
	return nil
}
