package models

// Singleton content documents, mutated only from the admin UI.
// No versioning or audit trail is kept for any of them.

type Notification struct {
	IsActive    bool   `bson:"isActive" json:"isActive"`
	Title       string `bson:"title" json:"title"`
	Message     string `bson:"message" json:"message"`
	Link        string `bson:"link" json:"link"`
	LinkLabel   string `bson:"linkLabel" json:"linkLabel"`
	DisplayType string `bson:"displayType" json:"displayType"` // "popup" or "modal"
}

type ContactField struct {
	Id    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
	Icon  string `bson:"icon" json:"icon"`
}

type SocialLink struct {
	Id      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Url     string `bson:"url" json:"url"`
	IconUrl string `bson:"iconUrl" json:"iconUrl"`
}

type ContactInfo struct {
	Title         string         `bson:"title" json:"title"`
	Subtitle      string         `bson:"subtitle" json:"subtitle"`
	ContactFields []ContactField `bson:"contactFields" json:"contactFields"`
	SocialLinks   []SocialLink   `bson:"socialLinks" json:"socialLinks"`
}

type OurStoryContent struct {
	Title    string `bson:"title" json:"title"`
	Text     string `bson:"text" json:"text"`
	ImageUrl string `bson:"imageUrl" json:"imageUrl"`
}

type FaqItem struct {
	Id string `bson:"id" json:"id"`
	Q  string `bson:"q" json:"q"`
	A  string `bson:"a" json:"a"`
}

// FaqList is the shape of the content/faqs document.
type FaqList struct {
	Items []FaqItem `bson:"items" json:"items"`
}

type CustomField struct {
	Id    string `bson:"id" json:"id"`
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value"`
}

type PaymentMethodDetails struct {
	Id           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Enabled      bool          `bson:"enabled" json:"enabled"`
	Instructions string        `bson:"instructions" json:"instructions"`
	Fields       []CustomField `bson:"fields" json:"fields"`
}

type HeroSlide struct {
	Id       string `bson:"id" json:"id"`
	Src      string `bson:"src" json:"src"`
	Alt      string `bson:"alt" json:"alt"`
	Title    string `bson:"title" json:"title"`
	Subtitle string `bson:"subtitle" json:"subtitle"`
	Link     string `bson:"link" json:"link"`
}

type FabSettings struct {
	Enabled         bool   `bson:"enabled" json:"enabled"`
	IconUrl         string `bson:"iconUrl" json:"iconUrl"`
	WhatsappIconUrl string `bson:"whatsappIconUrl" json:"whatsappIconUrl"`
	CallIconUrl     string `bson:"callIconUrl" json:"callIconUrl"`
}

type StoreSettings struct {
	PaymentMethods []PaymentMethodDetails `bson:"paymentMethods" json:"paymentMethods"`
	HeroSlides     []HeroSlide            `bson:"heroSlides" json:"heroSlides"`
	Fab            FabSettings            `bson:"fab" json:"fab"`
}

// EnabledPaymentMethod finds an enabled payment method by its configured
// name. The order's paymentMethod field is free text matching this name.
func (s StoreSettings) EnabledPaymentMethod(name string) (PaymentMethodDetails, bool) {
	for _, pm := range s.PaymentMethods {
		if pm.Enabled && pm.Name == name {
			return pm, true
		}
	}
	return PaymentMethodDetails{}, false
}
