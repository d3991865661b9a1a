package bot

import (
	"github.com/bwmarrin/discordgo"
)

// responder abstracts interaction responses so handlers can be tested
// without a gateway connection. All responses are ephemeral, visible
// only to the invoking admin.
type responder interface {
	// Message sends an immediate ephemeral reply. Used for denials
	// and error states that need no further work.
	Message(content string) error

	// Panel sends an immediate ephemeral embed with button rows.
	Panel(embed *discordgo.MessageEmbed, rows []discordgo.MessageComponent) error

	// Defer acknowledges the interaction so slow store or payment
	// calls do not hit the platform's interaction timeout. Must be
	// called before Follow/FollowEmbed.
	Defer() error

	// Follow delivers the substantive reply after Defer.
	Follow(content string) error

	// FollowEmbed delivers an embed reply after Defer.
	FollowEmbed(embed *discordgo.MessageEmbed) error
}

type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
}

func (r *interactionResponder) Message(content string) error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (r *interactionResponder) Panel(embed *discordgo.MessageEmbed, rows []discordgo.MessageComponent) error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: rows,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func (r *interactionResponder) Defer() error {
	return r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func (r *interactionResponder) Follow(content string) error {
	_, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	return err
}

func (r *interactionResponder) FollowEmbed(embed *discordgo.MessageEmbed) error {
	_, err := r.session.FollowupMessageCreate(r.interaction.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	return err
}
