package whatsapp

import "unicode/utf8"

const (
	maxButtons      = 3
	maxButtonTitle  = 20
	maxRowTitle     = 24
	maxRowDesc      = 72
	maxListSections = 10
	maxBodyLength   = 1024
	maxTextLength   = 4096
)

// Message is the body of POST /{phone_number_id}/messages.
type Message struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type,omitempty"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Context          *ReplyTo     `json:"context,omitempty"`
	Text             *Text        `json:"text,omitempty"`
	Interactive      *Interactive `json:"interactive,omitempty"`
	Image            *Media       `json:"image,omitempty"`
	Video            *Media       `json:"video,omitempty"`
	Audio            *Media       `json:"audio,omitempty"`
	Document         *Media       `json:"document,omitempty"`
	Template         *Template    `json:"template,omitempty"`
	Reaction         *Reaction    `json:"reaction,omitempty"`
}

// Summary is a short human rendering used for the chat inbox and logs.
func (m Message) Summary() string {
	switch {
	case m.Text != nil:
		return m.Text.Body
	case m.Interactive != nil && m.Interactive.Body != nil:
		return m.Interactive.Body.Text
	case m.Template != nil:
		return "[template] " + m.Template.Name
	case m.Reaction != nil:
		return m.Reaction.Emoji
	case m.Image != nil:
		return "[image] " + m.Image.Caption
	case m.Video != nil:
		return "[video] " + m.Video.Caption
	case m.Document != nil:
		return "[document] " + m.Document.Filename
	case m.Audio != nil:
		return "[audio]"
	}
	return "[" + m.Type + "]"
}

type ReplyTo struct {
	MessageID string `json:"message_id"`
}

type Text struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

type Media struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

type Reaction struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

type Interactive struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveText   `json:"body,omitempty"`
	Footer *InteractiveText   `json:"footer,omitempty"`
	Action InteractiveAction  `json:"action"`
}

type InteractiveHeader struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Image *Media `json:"image,omitempty"`
}

type InteractiveText struct {
	Text string `json:"text"`
}

type InteractiveAction struct {
	Name              string            `json:"name,omitempty"`
	Button            string            `json:"button,omitempty"`
	Buttons           []ReplyButton     `json:"buttons,omitempty"`
	Sections          []Section         `json:"sections,omitempty"`
	CatalogID         string            `json:"catalog_id,omitempty"`
	ProductRetailerID string            `json:"product_retailer_id,omitempty"`
	Parameters        *ActionParameters `json:"parameters,omitempty"`
}

type ActionParameters struct {
	DisplayText string `json:"display_text,omitempty"`
	URL         string `json:"url,omitempty"`
}

type ReplyButton struct {
	Type  string `json:"type"`
	Reply Button `json:"reply"`
}

// Button is a quick-reply button; ID comes back in the button_reply.
type Button struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Section struct {
	Title        string        `json:"title,omitempty"`
	Rows         []Row         `json:"rows,omitempty"`
	ProductItems []ProductItem `json:"product_items,omitempty"`
}

type Row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ProductItem struct {
	ProductRetailerID string `json:"product_retailer_id"`
}

type Template struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

type TemplateLanguage struct {
	Code string `json:"code"`
}

type TemplateComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters"`
}

type TemplateParameter struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Payload string `json:"payload,omitempty"`
}

func base(to, kind string) Message {
	return Message{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             kind,
	}
}

// NewText builds a plain text message. Link previews are enabled when the
// body contains a URL.
func NewText(to, body string, previewURL bool) Message {
	m := base(to, "text")
	m.Text = &Text{Body: truncate(body, maxTextLength), PreviewURL: previewURL}
	return m
}

// NewButtons builds a reply-button message; extra buttons beyond three are dropped.
func NewButtons(to, body, footer string, buttons []Button) Message {
	if len(buttons) > maxButtons {
		buttons = buttons[:maxButtons]
	}
	reply := make([]ReplyButton, len(buttons))
	for i, b := range buttons {
		reply[i] = ReplyButton{Type: "reply", Reply: Button{ID: b.ID, Title: truncate(b.Title, maxButtonTitle)}}
	}

	m := base(to, "interactive")
	m.Interactive = &Interactive{
		Type:   "button",
		Body:   &InteractiveText{Text: truncate(body, maxBodyLength)},
		Footer: footerText(footer),
		Action: InteractiveAction{Buttons: reply},
	}
	return m
}

// NewList builds a list message opened by buttonLabel.
func NewList(to, header, body, footer, buttonLabel string, sections []Section) Message {
	if len(sections) > maxListSections {
		sections = sections[:maxListSections]
	}
	clipped := make([]Section, len(sections))
	for i, s := range sections {
		rows := make([]Row, len(s.Rows))
		for j, r := range s.Rows {
			rows[j] = Row{ID: r.ID, Title: truncate(r.Title, maxRowTitle), Description: truncate(r.Description, maxRowDesc)}
		}
		clipped[i] = Section{Title: truncate(s.Title, maxRowTitle), Rows: rows}
	}

	m := base(to, "interactive")
	m.Interactive = &Interactive{
		Type:   "list",
		Body:   &InteractiveText{Text: truncate(body, maxBodyLength)},
		Footer: footerText(footer),
		Action: InteractiveAction{Button: truncate(buttonLabel, maxButtonTitle), Sections: clipped},
	}
	if header != "" {
		m.Interactive.Header = &InteractiveHeader{Type: "text", Text: header}
	}
	return m
}

// NewCTAURL builds an interactive call-to-action URL button.
func NewCTAURL(to, body, label, url string) Message {
	m := base(to, "interactive")
	m.Interactive = &Interactive{
		Type: "cta_url",
		Body: &InteractiveText{Text: truncate(body, maxBodyLength)},
		Action: InteractiveAction{
			Name:       "cta_url",
			Parameters: &ActionParameters{DisplayText: truncate(label, maxButtonTitle), URL: url},
		},
	}
	return m
}

// NewMedia builds an image, video, audio or document message from a link.
func NewMedia(to, kind, link, caption, filename string) Message {
	m := base(to, kind)
	media := &Media{Link: link, Caption: caption, Filename: filename}
	switch kind {
	case "image":
		m.Image = media
	case "video":
		m.Video = media
	case "audio":
		media.Caption = ""
		m.Audio = media
	default:
		m.Type = "document"
		m.Document = media
	}
	return m
}

// NewTemplate builds a template message with positional body parameters.
func NewTemplate(to, name, language string, params []string) Message {
	m := base(to, "template")
	m.Template = &Template{Name: name, Language: TemplateLanguage{Code: language}}
	if len(params) > 0 {
		body := TemplateComponent{Type: "body"}
		for _, p := range params {
			body.Parameters = append(body.Parameters, TemplateParameter{Type: "text", Text: p})
		}
		m.Template.Components = []TemplateComponent{body}
	}
	return m
}

// NewProduct builds a single-product message from the catalog.
func NewProduct(to, catalogID, retailerID, body string) Message {
	m := base(to, "interactive")
	m.Interactive = &Interactive{
		Type:   "product",
		Body:   &InteractiveText{Text: truncate(body, maxBodyLength)},
		Action: InteractiveAction{CatalogID: catalogID, ProductRetailerID: retailerID},
	}
	return m
}

// NewProductList builds a multi-product message; header is required by the API.
func NewProductList(to, catalogID, header, body string, sections []Section) Message {
	m := base(to, "interactive")
	m.Interactive = &Interactive{
		Type:   "product_list",
		Header: &InteractiveHeader{Type: "text", Text: header},
		Body:   &InteractiveText{Text: truncate(body, maxBodyLength)},
		Action: InteractiveAction{CatalogID: catalogID, Sections: sections},
	}
	return m
}

func NewReaction(to, messageID, emoji string) Message {
	m := base(to, "reaction")
	m.Reaction = &Reaction{MessageID: messageID, Emoji: emoji}
	return m
}

// NewLocationRequest asks the user to share their location.
func NewLocationRequest(to, body string) Message {
	m := base(to, "interactive")
	m.Interactive = &Interactive{
		Type:   "location_request_message",
		Body:   &InteractiveText{Text: truncate(body, maxBodyLength)},
		Action: InteractiveAction{Name: "send_location"},
	}
	return m
}

type readReceipt struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

func footerText(s string) *InteractiveText {
	if s == "" {
		return nil
	}
	return &InteractiveText{Text: truncate(s, 60)}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
