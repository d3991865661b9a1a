package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
)

const (
	colorPanel   = 0x3498db
	colorInspect = 0x71368a

	buttonsPerRow = 5
)

func inspectEmbed(aa []accounts.Account) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "✨ Registered PayPay accounts",
		Description: fmt.Sprintf("**%d** account(s) registered.", len(aa)),
		Color:       colorInspect,
	}

	for i, a := range aa {
		m := a.Masked()
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Account #%d", i+1),
			Value:  maskedFieldValue(m),
			Inline: false,
		})
	}

	return embed
}

func maskedFieldValue(m accounts.Masked) string {
	return fmt.Sprintf(
		"**PayPay ID:** `%s`\n"+
			"1. Phone: `%s`\n"+
			"   Password: `%s`\n"+
			"2. Device UUID: `%s`\n"+
			"3. Client UUID: `%s`\n"+
			"4. Access Token: `%s`\n"+
			"5. Refresh Token: `%s`\n"+
			"6. Proxy: `%s`",
		m.ID, m.Phone, m.Pass, m.DeviceUUID, m.ClientUUID,
		presence(m.HasAccessToken), presence(m.HasRefreshToken), m.Proxy,
	)
}

func presence(has bool) string {
	if has {
		return "present"
	}
	return "absent"
}

func panelEmbed(id string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "PayPay operation panel",
		Description: fmt.Sprintf("Selected PayPay account:\n**%s**", id),
		Color:       colorPanel,
	}
}

func panelRows() []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row discordgo.ActionsRow

	for _, a := range panelActions {
		row.Components = append(row.Components, discordgo.Button{
			Label:    a.label,
			Style:    a.style,
			CustomID: a.customID,
		})
		if len(row.Components) == buttonsPerRow {
			rows = append(rows, row)
			row = discordgo.ActionsRow{}
		}
	}
	if len(row.Components) > 0 {
		rows = append(rows, row)
	}

	return rows
}
