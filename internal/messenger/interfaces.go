package messenger

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_messenger.go -package=mocks

import (
	"context"

	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

// Client is the provider transport, satisfied by *whatsapp.Client.
type Client interface {
	Send(ctx context.Context, msg whatsapp.Message) (*whatsapp.SendResult, error)
	MarkRead(ctx context.Context, messageID string) error
	CatalogID() string
}

// Gateway is the shaped sending surface used by the bot and services.
type Gateway interface {
	Send(ctx context.Context, msg whatsapp.Message) (string, error)
	Text(ctx context.Context, to, body string) error
	Buttons(ctx context.Context, to, body string, buttons []whatsapp.Button) error
	List(ctx context.Context, to, header, body, button string, sections []whatsapp.Section) error
	CTAURL(ctx context.Context, to, body, label, url string) error
	Image(ctx context.Context, to, link, caption string) error
	Video(ctx context.Context, to, link, caption string) error
	Audio(ctx context.Context, to, link string) error
	Document(ctx context.Context, to, link, caption, filename string) error
	Template(ctx context.Context, to, name, language string, params []string) error
	Product(ctx context.Context, to, retailerID, body string) error
	ProductList(ctx context.Context, to, header, body string, retailerIDs []string) error
	Reaction(ctx context.Context, to, messageID, emoji string) error
	LocationRequest(ctx context.Context, to, body string) error
	MarkRead(ctx context.Context, messageID string) error
}
