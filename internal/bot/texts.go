package bot

// Texts holds the customer-facing copy for one language. Entries with verbs
// are fmt formats.
type Texts struct {
	Welcome        string // shop name
	WelcomeBack    string // customer name
	MainMenu       string
	MainMenuFooter string

	JewelleryMenu   string
	CategoryHeader  string // category title
	CategoryEmpty   string // category title
	ProductDetails  string // name, price, description, stock line
	InStock         string
	OutOfStock      string
	OffersMenu      string // coupon lines
	ChatMenu        string
	AgentHandoff    string
	CatalogIntro    string
	BestsellersHead string
	NewArrivalsHead string
	NoProducts      string
	ShippingInfo    string // free shipping threshold, flat fee
	ReturnPolicy    string
	FAQ             string
	CallbackQueued  string
	LanguageSet     string
	OptedIn         string
	OptedOut        string

	AskOrderID      string
	OrderNotFound   string // order id
	OrderStatus     string // order id, status, payment status, total
	OrderTracking   string // courier, tracking id, url
	NoOrders        string
	MyOrdersHeader  string
	RateLimited     string
	UnknownButton   string
	DefaultReply    string
	Apology         string
	MediaReceived   string
	ContactReceived string
	LocationNoPin   string

	PincodeServiceable    string // pincode, estimate, shipping line
	PincodeNotServiceable string // pincode
	PincodeFreeShipping   string
	PincodeShippingFee    string // fee

	AskProduct        string
	ProductNotMatched string // query
	AddedToCart       string // name, qty, subtotal
	CartEmpty         string
	CartSummary       string // lines, subtotal
	CartCleared       string
	AskAddress        string
	AskPincode        string
	InvalidPincode    string
	AskCoupon         string
	CouponApplied     string // code, discount
	CouponInvalid     string // reason
	OrderSummary      string // lines, subtotal, discount line, shipping, total, address, estimate
	OrderPlaced       string // order id, total
	PayLinkBody       string // order id, total
	PayLinkFallback   string // order id, total, upi
	PaymentPending    string // order id
	OrderCancelled    string
	ImageProduct      string
	StockShort        string // name
	CheckoutFailed    string
	AlreadyPaid       string // order id
}

var english = Texts{
	Welcome:        "✨ Welcome to *%s*! ✨\n\nHandcrafted fashion jewellery, delivered across India.\nHow can we help you today?",
	WelcomeBack:    "Welcome back, %s! 💖 What would you like to explore today?",
	MainMenu:       "Choose an option below 👇",
	MainMenuFooter: "Reply MENU anytime",

	JewelleryMenu:   "💎 Explore our collections",
	CategoryHeader:  "✨ %s",
	CategoryEmpty:   "Our %s collection is being restocked. Please check our other collections 💫",
	ProductDetails:  "*%s*\n💰 %s\n\n%s\n\n%s",
	InStock:         "✅ In stock",
	OutOfStock:      "❌ Currently out of stock",
	OffersMenu:      "🎁 *Current offers*\n\n%s\n\n🚚 Free shipping on orders above ₹498!",
	ChatMenu:        "💬 How can we help?",
	AgentHandoff:    "👩‍💼 A team member will reply here shortly (10am-7pm IST). You can keep typing your question.",
	CatalogIntro:    "🛍️ Browse our full catalogue and add items straight to your cart:",
	BestsellersHead: "🔥 Bestsellers",
	NewArrivalsHead: "🆕 New arrivals",
	NoProducts:      "Nothing to show here right now. Check back soon! 💫",
	ShippingInfo:    "🚚 *Shipping*\n\n• Free shipping on orders above %s\n• Flat %s otherwise\n• Delivery in 3-7 business days\n• Tracking link shared once shipped",
	ReturnPolicy:    "↩️ *Returns*\n\n• 7 day easy returns on unused items\n• Refund to original payment method in 5-7 days\n• Earrings are non-returnable for hygiene reasons",
	FAQ:             "❓ *FAQ*\n\n*Is the jewellery skin friendly?* Yes, nickel and lead free.\n*Do you offer COD?* Prepaid only, via UPI, cards or net banking.\n*How do I track my order?* Tap Track Order and share your order ID.",
	CallbackQueued:  "📞 Got it! Our team will call you back within working hours.",
	LanguageSet:     "✅ Language set to English.",
	OptedIn:         "🔔 You're subscribed to offers and new launches.",
	OptedOut:        "🔕 You won't receive promotional messages anymore. Reply SUBSCRIBE to opt back in.",

	AskOrderID:      "📦 Please share your order ID (e.g. KAA-123456).",
	OrderNotFound:   "😕 Order %s was not found. Please check the ID and try again, or chat with us.",
	OrderStatus:     "📦 *Order %s*\n\nStatus: %s\nPayment: %s\nTotal: %s",
	OrderTracking:   "\n\n🚚 %s: %s\n%s",
	NoOrders:        "You haven't placed any orders yet. Start shopping 💎",
	MyOrdersHeader:  "📋 Your recent orders",
	RateLimited:     "⏳ You're tapping too fast! Please wait a moment and try again.",
	UnknownButton:   "🤔 Sorry, I didn't catch that. Did you mean:",
	DefaultReply:    "Thanks for your message! 💖 Here's what I can help with:",
	Apology:         "😔 Something went wrong on our side. Here's the menu while we fix it:",
	MediaReceived:   "📸 Thanks! Our team will take a look.",
	ContactReceived: "📇 Thanks for sharing the contact!",
	LocationNoPin:   "📍 Thanks! Please also type your 6-digit pincode.",

	PincodeServiceable:    "✅ We deliver to *%s*!\n📅 Estimated delivery: %s\n%s",
	PincodeNotServiceable: "😕 Sorry, we don't deliver to %s yet.",
	PincodeFreeShipping:   "🚚 Free shipping above ₹498",
	PincodeShippingFee:    "🚚 Shipping: %s (free above ₹498)",

	AskProduct:        "🛍️ Which product would you like? Type its name or pick from the catalogue.",
	ProductNotMatched: "😕 I couldn't find \"%s\". Try another name or browse the catalogue.",
	AddedToCart:       "🛒 Added *%s* × %d\nCart subtotal: %s",
	CartEmpty:         "🛒 Your cart is empty.",
	CartSummary:       "🛒 *Your cart*\n\n%s\n\nSubtotal: %s",
	CartCleared:       "🗑️ Your cart has been cleared.",
	AskAddress:        "🏠 Please type your full delivery address with name, city and 6-digit pincode.",
	AskPincode:        "📮 Please share your 6-digit pincode.",
	InvalidPincode:    "⚠️ That doesn't look like a valid 6-digit pincode. Please try again.",
	AskCoupon:         "🎟️ Type your coupon code (e.g. KAAPAV20).",
	CouponApplied:     "🎉 Coupon %s applied! You save %s.",
	CouponInvalid:     "⚠️ Coupon not applied: %s",
	OrderSummary:      "🧾 *Order summary*\n\n%s\n\nSubtotal: %s%s\nShipping: %s\n*Total: %s*\n\n📍 %s\n📅 %s",
	OrderPlaced:       "🎉 Order *%s* placed! Total: %s",
	PayLinkBody:       "💳 Complete payment of %[2]s for order %[1]s",
	PayLinkFallback:   "💳 Order *%s*: please pay %s via UPI to %s and share the screenshot here.",
	PaymentPending:    "⏰ Your order %s is waiting for payment.",
	OrderCancelled:    "❌ Order cancelled. Your cart is saved if you change your mind.",
	ImageProduct:      "📸 Nice pick! Please type the product name or code so I can find it for you.",
	StockShort:        "😕 Sorry, %s just went out of stock. Please update your cart.",
	CheckoutFailed:    "😔 We couldn't place your order right now. Please try again in a moment.",
	AlreadyPaid:       "✅ Order %s is already paid. Thank you!",
}

var hindi = Texts{
	Welcome:        "✨ *%s* में आपका स्वागत है! ✨\n\nहस्तनिर्मित फैशन ज्वेलरी, पूरे भारत में डिलीवरी।\nहम आपकी कैसे मदद करें?",
	WelcomeBack:    "फिर से स्वागत है, %s! 💖 आज आप क्या देखना चाहेंगे?",
	MainMenu:       "नीचे से विकल्प चुनें 👇",
	MainMenuFooter: "कभी भी MENU लिखें",

	JewelleryMenu:   "💎 हमारे कलेक्शन देखें",
	CategoryHeader:  "✨ %s",
	CategoryEmpty:   "%s कलेक्शन जल्द वापस आएगा। बाकी कलेक्शन देखें 💫",
	ProductDetails:  "*%s*\n💰 %s\n\n%s\n\n%s",
	InStock:         "✅ स्टॉक में है",
	OutOfStock:      "❌ अभी स्टॉक में नहीं है",
	OffersMenu:      "🎁 *आज के ऑफर*\n\n%s\n\n🚚 ₹498 से ऊपर फ्री शिपिंग!",
	ChatMenu:        "💬 हम कैसे मदद करें?",
	AgentHandoff:    "👩‍💼 हमारी टीम जल्द यहीं जवाब देगी (सुबह 10 से शाम 7 बजे)।",
	CatalogIntro:    "🛍️ पूरा कैटलॉग देखें:",
	BestsellersHead: "🔥 बेस्टसेलर",
	NewArrivalsHead: "🆕 नए प्रोडक्ट",
	NoProducts:      "अभी कुछ उपलब्ध नहीं है। जल्द देखें! 💫",
	ShippingInfo:    "🚚 *शिपिंग*\n\n• %s से ऊपर फ्री शिपिंग\n• बाकी पर %s\n• 3-7 दिन में डिलीवरी",
	ReturnPolicy:    "↩️ *रिटर्न*\n\n• 7 दिन में आसान रिटर्न\n• 5-7 दिन में रिफंड\n• ईयररिंग्स रिटर्न नहीं होते",
	FAQ:             "❓ *सवाल-जवाब*\n\n*क्या ज्वेलरी स्किन फ्रेंडली है?* हाँ।\n*COD है?* सिर्फ प्रीपेड।\n*ऑर्डर कैसे ट्रैक करें?* Track Order दबाएँ।",
	CallbackQueued:  "📞 ठीक है! हमारी टीम आपको कॉल करेगी।",
	LanguageSet:     "✅ भाषा हिंदी कर दी गई है।",
	OptedIn:         "🔔 आप ऑफर के लिए सब्सक्राइब हो गए हैं।",
	OptedOut:        "🔕 अब आपको प्रमोशनल मैसेज नहीं मिलेंगे।",

	AskOrderID:      "📦 अपना ऑर्डर ID भेजें (जैसे KAA-123456)।",
	OrderNotFound:   "😕 ऑर्डर %s नहीं मिला। ID जाँचें या हमसे बात करें।",
	OrderStatus:     "📦 *ऑर्डर %s*\n\nस्थिति: %s\nभुगतान: %s\nकुल: %s",
	OrderTracking:   "\n\n🚚 %s: %s\n%s",
	NoOrders:        "आपने अभी तक कोई ऑर्डर नहीं किया है 💎",
	MyOrdersHeader:  "📋 आपके हाल के ऑर्डर",
	RateLimited:     "⏳ थोड़ा रुकिए और फिर से कोशिश करें।",
	UnknownButton:   "🤔 माफ़ कीजिए, समझ नहीं आया। क्या आपका मतलब था:",
	DefaultReply:    "आपके मैसेज के लिए धन्यवाद! 💖 मैं इनमें मदद कर सकती हूँ:",
	Apology:         "😔 कुछ गड़बड़ हो गई। मेनू यहाँ है:",
	MediaReceived:   "📸 धन्यवाद! हमारी टीम देखेगी।",
	ContactReceived: "📇 कॉन्टैक्ट भेजने के लिए धन्यवाद!",
	LocationNoPin:   "📍 धन्यवाद! अपना 6 अंकों का पिनकोड भी लिखें।",

	PincodeServiceable:    "✅ हम *%s* पर डिलीवर करते हैं!\n📅 अनुमानित डिलीवरी: %s\n%s",
	PincodeNotServiceable: "😕 माफ़ कीजिए, %s पर अभी डिलीवरी नहीं है।",
	PincodeFreeShipping:   "🚚 ₹498 से ऊपर फ्री शिपिंग",
	PincodeShippingFee:    "🚚 शिपिंग: %s (₹498 से ऊपर फ्री)",

	AskProduct:        "🛍️ कौन सा प्रोडक्ट चाहिए? नाम लिखें या कैटलॉग से चुनें।",
	ProductNotMatched: "😕 \"%s\" नहीं मिला। दूसरा नाम लिखें।",
	AddedToCart:       "🛒 *%s* × %d जोड़ा गया\nकुल: %s",
	CartEmpty:         "🛒 आपका कार्ट खाली है।",
	CartSummary:       "🛒 *आपका कार्ट*\n\n%s\n\nकुल: %s",
	CartCleared:       "🗑️ कार्ट खाली कर दिया गया।",
	AskAddress:        "🏠 नाम, शहर और 6 अंकों के पिनकोड के साथ पूरा पता लिखें।",
	AskPincode:        "📮 अपना 6 अंकों का पिनकोड भेजें।",
	InvalidPincode:    "⚠️ पिनकोड सही नहीं लगता। फिर से भेजें।",
	AskCoupon:         "🎟️ कूपन कोड लिखें (जैसे KAAPAV20)।",
	CouponApplied:     "🎉 कूपन %s लग गया! आपकी बचत %s।",
	CouponInvalid:     "⚠️ कूपन नहीं लगा: %s",
	OrderSummary:      "🧾 *ऑर्डर सारांश*\n\n%s\n\nसबटोटल: %s%s\nशिपिंग: %s\n*कुल: %s*\n\n📍 %s\n📅 %s",
	OrderPlaced:       "🎉 ऑर्डर *%s* हो गया! कुल: %s",
	PayLinkBody:       "💳 ऑर्डर %[1]s के लिए %[2]s का भुगतान करें",
	PayLinkFallback:   "💳 ऑर्डर *%s*: कृपया %s UPI से %s पर भेजें और स्क्रीनशॉट शेयर करें।",
	PaymentPending:    "⏰ आपका ऑर्डर %s भुगतान का इंतज़ार कर रहा है।",
	OrderCancelled:    "❌ ऑर्डर रद्द। आपका कार्ट सेव है।",
	ImageProduct:      "📸 बढ़िया! प्रोडक्ट का नाम या कोड लिखें।",
	StockShort:        "😕 %s अभी स्टॉक में नहीं है। कार्ट अपडेट करें।",
	CheckoutFailed:    "😔 अभी ऑर्डर नहीं हो पाया। थोड़ी देर में फिर कोशिश करें।",
	AlreadyPaid:       "✅ ऑर्डर %s का भुगतान हो चुका है। धन्यवाद!",
}

// textsFor returns the copy for a customer language, defaulting to English.
func textsFor(language string) *Texts {
	if language == "hi" {
		return &hindi
	}
	return &english
}
