package infra

import "github.com/bwmarrin/discordgo"

type DiscordAPI interface {
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}
