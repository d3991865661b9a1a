// Package bot exposes the account console as Discord slash commands
// and panel buttons.
package bot

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
	"github.com/paypay-hub/paypay-admin-bot/configs"
	"github.com/paypay-hub/paypay-admin-bot/paypay"
	"github.com/paypay-hub/paypay-admin-bot/refresher"
	"github.com/paypay-hub/paypay-admin-bot/selector"
)

const presenceName = "paypay管理"

// Bot dispatches Discord interactions to the account services. One
// instance runs per process; discordgo delivers interactions on its
// own goroutines, shared selection state is guarded inside Selector.
type Bot struct {
	session   *discordgo.Session
	cfg       *configs.Config
	accounts  *accounts.Service
	selector  *selector.Selector
	refresher *refresher.Service
	dial      paypay.Factory
}

func New(
	cfg *configs.Config,
	accountService *accounts.Service,
	sel *selector.Selector,
	refreshService *refresher.Service,
	dial paypay.Factory,
) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	b := &Bot{
		session:   session,
		cfg:       cfg,
		accounts:  accountService,
		selector:  sel,
		refresher: refreshService,
		dial:      dial,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)

	return b, nil
}

// Start opens the gateway connection and registers the application
// commands globally.
func (b *Bot) Start() error {
	return b.session.Open()
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	if err := s.UpdateGameStatus(0, presenceName); err != nil {
		log.Warn(err)
	}

	for _, cmd := range commands() {
		if _, err := s.ApplicationCommandCreate(r.User.ID, "", cmd); err != nil {
			log.
				WithFields(log.Fields{"command": cmd.Name, "error": err}).
				Error("Command registration failed")
		}
	}

	log.WithFields(log.Fields{"user": r.User.Username}).Info("Bot connected")
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	r := &interactionResponder{session: s, interaction: i}
	caller := interactionUserID(i)

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case cmdInspect:
			b.handleInspect(r, caller)
		case cmdPanel:
			b.handlePanel(r, caller)
		}
	case discordgo.InteractionMessageComponent:
		b.handleAction(r, caller, i.MessageComponentData().CustomID)
	}
}

// interactionUserID resolves the invoking user for both guild and DM
// interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) isInspector(userID string) bool {
	return userID != "" && userID == b.cfg.InspectorID
}

func (b *Bot) isAdmin(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range b.cfg.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
