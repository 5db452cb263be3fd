package bot

import (
	"strconv"
	"strings"

	"github.com/kaapav/kaapav-bot/internal/normalize"
)

// Action is a logical button handler.
type Action int

const (
	ActionMainMenu Action = iota
	ActionJewelleryMenu
	ActionOffersMenu
	ActionChatMenu
	ActionChatNow
	ActionTrackOrder
	ActionMyOrders
	ActionCatalog
	ActionBestsellers
	ActionNewArrivals
	ActionShippingInfo
	ActionReturnPolicy
	ActionFAQ
	ActionCallback
	ActionLanguage
	ActionOptIn
	ActionOptOut
	ActionBuyNow
	ActionViewCart
	ActionAddMore
	ActionClearCart
	ActionCheckout
	ActionApplyCoupon
	ActionConfirmOrder
	ActionModifyOrder
	ActionCancelOrder
	ActionPayNow

	// Families carrying an argument after their prefix.
	ActionProduct
	ActionOrderDetails
	ActionTrackByID
	ActionCategory
	ActionVariant
	ActionQuantity
)

var actionIDs = map[Action]string{
	ActionMainMenu:      "MAIN_MENU",
	ActionJewelleryMenu: "JEWELLERY_MENU",
	ActionOffersMenu:    "OFFERS_MENU",
	ActionChatMenu:      "CHAT_MENU",
	ActionChatNow:       "CHAT_NOW",
	ActionTrackOrder:    "TRACK_ORDER",
	ActionMyOrders:      "MY_ORDERS",
	ActionCatalog:       "CATALOG",
	ActionBestsellers:   "BESTSELLERS",
	ActionNewArrivals:   "NEW_ARRIVALS",
	ActionShippingInfo:  "SHIPPING_INFO",
	ActionReturnPolicy:  "RETURN_POLICY",
	ActionFAQ:           "FAQ",
	ActionCallback:      "CALLBACK",
	ActionLanguage:      "LANGUAGE",
	ActionOptIn:         "OPT_IN",
	ActionOptOut:        "OPT_OUT",
	ActionBuyNow:        "BUY_NOW",
	ActionViewCart:      "VIEW_CART",
	ActionAddMore:       "ADD_MORE",
	ActionClearCart:     "CLEAR_CART",
	ActionCheckout:      "CHECKOUT",
	ActionApplyCoupon:   "APPLY_COUPON",
	ActionConfirmOrder:  "CONFIRM_ORDER",
	ActionModifyOrder:   "MODIFY_ORDER",
	ActionCancelOrder:   "CANCEL_ORDER",
	ActionPayNow:        "PAY_NOW",
	ActionProduct:       "PROD_",
	ActionOrderDetails:  "ORDER_",
	ActionTrackByID:     "TRACK_",
	ActionCategory:      "CAT_",
	ActionVariant:       "VARIANT_",
	ActionQuantity:      "QTY_",
}

// families are tried in order after exact ids and aliases.
var families = []Action{ActionProduct, ActionOrderDetails, ActionTrackByID, ActionCategory, ActionVariant, ActionQuantity}

var byID = func() map[string]Action {
	m := make(map[string]Action, len(actionIDs))
	for a, id := range actionIDs {
		if !a.family() {
			m[id] = a
		}
	}
	return m
}()

// aliasGroups lists spelling variants and synonyms of each canonical id.
var aliasGroups = map[Action][]string{
	ActionMainMenu:      {"MENU", "HOME", "MAIN", "START", "BACK", "BACK_TO_MENU", "HOME_MENU"},
	ActionJewelleryMenu: {"JEWELLERY", "JEWELRY", "JEWELRY_MENU", "SHOP", "SHOP_NOW", "BROWSE", "COLLECTIONS", "CATEGORIES"},
	ActionOffersMenu:    {"OFFERS", "OFFER", "DEALS", "DISCOUNTS", "SALE"},
	ActionChatMenu:      {"CHAT", "SUPPORT", "HELP", "SUPPORT_MENU"},
	ActionChatNow:       {"AGENT", "TALK_TO_AGENT", "HUMAN", "CONTACT", "CONTACT_US", "LIVE_CHAT"},
	ActionTrackOrder:    {"TRACK", "TRACKING", "TRACK_MY_ORDER", "ORDER_STATUS"},
	ActionMyOrders:      {"ORDERS", "MY_ORDER", "ORDER_HISTORY"},
	ActionBuyNow:        {"BUY", "BUYNOW", "ORDER_NOW", "START_ORDER"},
	ActionViewCart:      {"CART", "MY_CART", "SHOW_CART"},
	ActionAddMore:       {"CONTINUE_SHOPPING", "ADD_MORE_ITEMS"},
	ActionClearCart:     {"EMPTY_CART"},
	ActionCheckout:      {"PROCEED", "CHECK_OUT", "PROCEED_TO_CHECKOUT"},
	ActionApplyCoupon:   {"COUPON", "APPLY_CODE", "DISCOUNT_CODE"},
	ActionConfirmOrder:  {"CONFIRM", "PLACE_ORDER"},
	ActionModifyOrder:   {"MODIFY", "EDIT_ORDER", "CHANGE"},
	ActionCancelOrder:   {"CANCEL"},
	ActionPayNow:        {"PAY", "PAYMENT", "MAKE_PAYMENT"},
	ActionCatalog:       {"CATALOGUE", "VIEW_CATALOG", "VIEW_CATALOGUE"},
	ActionBestsellers:   {"BEST_SELLERS", "BESTSELLER", "TRENDING"},
	ActionNewArrivals:   {"NEW", "NEW_ARRIVAL", "LATEST"},
	ActionShippingInfo:  {"SHIPPING", "DELIVERY", "DELIVERY_INFO"},
	ActionReturnPolicy:  {"RETURNS", "RETURN", "REFUND_POLICY"},
	ActionFAQ:           {"FAQS", "QUESTIONS"},
	ActionCallback:      {"CALL_ME", "REQUEST_CALLBACK", "CALLBACK_REQUEST"},
	ActionLanguage:      {"HINDI", "ENGLISH", "LANG", "CHANGE_LANGUAGE"},
	ActionOptIn:         {"SUBSCRIBE", "OPTIN"},
	ActionOptOut:        {"UNSUBSCRIBE", "OPTOUT", "STOP"},
}

var aliases = func() map[string]Action {
	m := make(map[string]Action)
	for a, variants := range aliasGroups {
		for _, v := range variants {
			m[v] = a
		}
	}
	return m
}()

// ID is the canonical identifier, or the prefix for argument families.
func (a Action) ID() string {
	return actionIDs[a]
}

func (a Action) String() string {
	return a.ID()
}

func (a Action) family() bool {
	return a >= ActionProduct
}

// ButtonID is a parsed button identifier.
type ButtonID struct {
	Action Action
	Arg    string
	Known  bool
}

// Canonical renders the identifier back into its canonical form.
func (b ButtonID) Canonical() string {
	if b.Action.family() {
		return b.Action.ID() + b.Arg
	}
	return b.Action.ID()
}

// ParseButtonID normalizes raw and resolves it to an action. Unknown input
// resolves to the main menu with Known unset; empty input is the main menu.
func ParseButtonID(raw string) ButtonID {
	orig := strings.TrimSpace(raw)
	if orig == "" {
		return ButtonID{Action: ActionMainMenu, Known: true}
	}

	norm := strings.ToUpper(strings.NewReplacer("-", "_", " ", "_").Replace(orig))
	if len(norm) != len(orig) {
		orig = norm
	}
	for _, p := range []string{"BUTTON_", "BTN_"} {
		if strings.HasPrefix(norm, p) {
			norm, orig = norm[len(p):], orig[len(p):]
			break
		}
	}
	for _, s := range []string{"_BUTTON", "_BTN"} {
		if strings.HasSuffix(norm, s) {
			norm, orig = norm[:len(norm)-len(s)], orig[:len(orig)-len(s)]
			break
		}
	}

	if a, ok := aliases[norm]; ok {
		return ButtonID{Action: a, Known: true}
	}
	if a, ok := byID[norm]; ok {
		return ButtonID{Action: a, Known: true}
	}

	for _, a := range families {
		prefix := a.ID()
		if !strings.HasPrefix(norm, prefix) || len(norm) == len(prefix) {
			continue
		}
		arg := strings.TrimSpace(orig[len(prefix):])
		switch a {
		case ActionOrderDetails, ActionTrackByID:
			id, ok := normalize.OrderID(arg)
			if !ok {
				continue
			}
			arg = id
		case ActionCategory:
			arg = strings.ToLower(arg)
		}
		return ButtonID{Action: a, Arg: arg, Known: true}
	}

	return ButtonID{Action: ActionMainMenu}
}

// CanonicalID is ParseButtonID rendered as a string.
func CanonicalID(raw string) string {
	return ParseButtonID(raw).Canonical()
}

func ProductButton(productID string) string { return ActionProduct.ID() + productID }
func OrderButton(orderID string) string     { return ActionOrderDetails.ID() + orderID }
func TrackButton(orderID string) string     { return ActionTrackByID.ID() + orderID }
func CategoryButton(category string) string { return ActionCategory.ID() + category }

func QuantityButton(productID string, qty int) string {
	return ActionQuantity.ID() + productID + "_" + strconv.Itoa(qty)
}

func VariantButton(productID, variant string) string {
	return ActionVariant.ID() + productID + "_" + variant
}

// splitLast splits "P1_2" into ("P1", "2").
func splitLast(arg string) (string, string) {
	i := strings.LastIndex(arg, "_")
	if i <= 0 || i == len(arg)-1 {
		return arg, ""
	}
	return arg[:i], arg[i+1:]
}
