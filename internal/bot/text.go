package bot

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/models"
	"github.com/kaapav/kaapav-bot/internal/normalize"
	"github.com/kaapav/kaapav-bot/internal/whatsapp"
)

var menuKeywords = map[string]bool{
	"menu": true, "hi": true, "hello": true, "start": true, "help": true,
	"0":    true, "home": true, "main": true,
}

type keyword struct {
	words  []string
	target string
}

// categoryKeywords are checked in order; earrings come before rings.
var categoryKeywords = []keyword{
	{words: []string{"earring", "jhumka", "jhumki", "stud", "hoop", "bali"}, target: "earrings"},
	{words: []string{"necklace", "choker", "pendant", "haar", "mangalsutra", "chain"}, target: "necklaces"},
	{words: []string{"bracelet", "bangle", "kada", "kangan", "chudi"}, target: "bracelets"},
	{words: []string{"anklet", "payal", "pajeb"}, target: "anklets"},
	{words: []string{"ring", "anguthi"}, target: "rings"},
	{words: []string{"bridal", "jewellery set", "jewelry set", "sets"}, target: "sets"},
}

type actionKeyword struct {
	words  []string
	action Action
}

// actionKeywords are checked in order, longer phrases first.
var actionKeywords = []actionKeyword{
	{words: []string{"where is my order", "track", "status"}, action: ActionTrackOrder},
	{words: []string{"my order", "order history"}, action: ActionMyOrders},
	{words: []string{"unsubscribe", "opt out"}, action: ActionOptOut},
	{words: []string{"subscribe", "opt in"}, action: ActionOptIn},
	{words: []string{"cart", "basket"}, action: ActionViewCart},
	{words: []string{"checkout", "check out"}, action: ActionCheckout},
	{words: []string{"coupon", "promo"}, action: ActionApplyCoupon},
	{words: []string{"offer", "discount", "sale", "deal"}, action: ActionOffersMenu},
	{words: []string{"pay"}, action: ActionPayNow},
	{words: []string{"buy", "order", "purchase", "kharid"}, action: ActionBuyNow},
	{words: []string{"agent", "human", "support", "talk", "baat"}, action: ActionChatNow},
	{words: []string{"call me", "callback"}, action: ActionCallback},
	{words: []string{"shipping", "delivery", "deliver", "courier"}, action: ActionShippingInfo},
	{words: []string{"return", "refund", "exchange"}, action: ActionReturnPolicy},
	{words: []string{"catalog", "catalogue", "collection"}, action: ActionCatalog},
	{words: []string{"bestseller", "best seller", "trending", "popular"}, action: ActionBestsellers},
	{words: []string{"new arrival", "latest", "new launch"}, action: ActionNewArrivals},
	{words: []string{"faq", "question"}, action: ActionFAQ},
	{words: []string{"hindi", "english", "language"}, action: ActionLanguage},
}

// TextRouter answers free text with a first-match-wins chain: menu
// keywords, quick replies, order ids, categories, actions, pincodes, the
// AI responder and finally the menu.
type TextRouter struct {
	*core
	buttons *ButtonRouter
}

func (r *TextRouter) Route(ctx context.Context, in *Inbound, text string) error {
	kw := normalize.Keyword(text)
	norm := normalize.Text(text)

	if menuKeywords[kw] {
		return r.sendMainMenu(ctx, in, "")
	}

	if matched, err := r.quickReply(ctx, in, norm); matched || err != nil {
		return err
	}

	if orderID, ok := normalize.OrderID(text); ok {
		return r.buttons.showOrder(ctx, in, orderID)
	}

	tokens := strings.Fields(norm)
	for _, k := range categoryKeywords {
		if matchAny(norm, tokens, k.words) {
			return r.sendCategory(ctx, in, k.target)
		}
	}

	for _, k := range actionKeywords {
		if matchAny(norm, tokens, k.words) {
			return r.buttons.dispatch(ctx, in, ButtonID{Action: k.action, Known: true}, r.buttons.loadContext(ctx, in))
		}
	}

	if pin, ok := normalize.Pincode(text); ok {
		return r.sendPincode(ctx, in, pin)
	}

	if r.AI != nil && r.AI.Configured() {
		reply, handled, err := r.AI.Reply(ctx, text, in.Language)
		switch {
		case err != nil:
			r.Logger.Warn("AI reply failed", zap.String("phone", in.Phone), zap.Error(err))
		case handled:
			r.recordAIResponse(in, reply)
			return r.Gateway.Buttons(ctx, in.Phone, reply, []whatsapp.Button{
				button(ActionJewelleryMenu, "💎 Shop now"),
				button(ActionChatNow, "👩‍💼 Talk to us"),
				button(ActionMainMenu, "🏠 Menu"),
			})
		}
	}

	return r.sendMainMenu(ctx, in, in.texts().DefaultReply)
}

// quickReply sends the first admin-defined reply matching text. Replies
// come ordered by priority then use count.
func (r *TextRouter) quickReply(ctx context.Context, in *Inbound, text string) (bool, error) {
	replies, err := r.Repo.QuickReply().ListActive(ctx)
	if err != nil {
		r.Logger.Warn("Failed to load quick replies", zap.Error(err))
		return false, nil
	}

	for _, qr := range replies {
		if !r.matchQuickReply(qr, text) {
			continue
		}
		id := qr.ID
		r.async("quick-reply:use", func(ctx context.Context) error {
			return r.Repo.QuickReply().IncrementUse(ctx, id)
		})

		if len(qr.Buttons) == 0 {
			return true, r.Gateway.Text(ctx, in.Phone, qr.Response)
		}
		buttons := make([]whatsapp.Button, 0, 3)
		for _, raw := range qr.Buttons {
			if len(buttons) == 3 {
				break
			}
			buttons = append(buttons, whatsapp.Button{ID: CanonicalID(raw), Title: buttonTitle(raw)})
		}
		return true, r.Gateway.Buttons(ctx, in.Phone, qr.Response, buttons)
	}
	return false, nil
}

func (r *TextRouter) matchQuickReply(qr *models.QuickReply, text string) bool {
	key := normalize.Text(qr.Keyword)
	if key == "" {
		return false
	}
	switch qr.MatchType {
	case models.MatchExact, "":
		return text == key
	case models.MatchStarts:
		return strings.HasPrefix(text, key)
	case models.MatchEnds:
		return strings.HasSuffix(text, key)
	case models.MatchContains:
		return strings.Contains(text, key)
	case models.MatchWord:
		return strings.Contains(" "+text+" ", " "+key+" ")
	case models.MatchRegex:
		re, err := regexp.Compile("(?i)" + qr.Keyword)
		if err != nil {
			r.Logger.Debug("Invalid quick reply pattern", zap.Int64("id", qr.ID), zap.Error(err))
			return false
		}
		return re.MatchString(text)
	}
	return false
}

func (r *TextRouter) recordAIResponse(in *Inbound, reply string) {
	if in.RowID == 0 {
		return
	}
	id := in.RowID
	r.async("message:ai", func(ctx context.Context) error {
		return r.Repo.Message().SetAIResponse(ctx, id, reply)
	})
}

// matchAny reports whether a phrase occurs in text or a single word starts
// one of its tokens.
func matchAny(text string, tokens, words []string) bool {
	for _, w := range words {
		if strings.Contains(w, " ") {
			if strings.Contains(" "+text+" ", " "+w) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if strings.HasPrefix(tok, w) {
				return true
			}
		}
	}
	return false
}

// buttonTitle labels a stored button id for display.
func buttonTitle(raw string) string {
	id := ParseButtonID(raw)
	if title, ok := suggestionTitles[id.Action]; ok && !id.Action.family() {
		return title
	}
	if id.Action == ActionMainMenu {
		return "🏠 Menu"
	}
	title := strings.ReplaceAll(strings.ToLower(id.Canonical()), "_", " ")
	if len(title) > 20 {
		title = title[:20]
	}
	return statusLabel(title)
}
