package values

// ShopValues carries the storefront defaults that are data rather than code.
type ShopValues struct {
	MainFeedSize int    `yaml:"main-feed-size"`
	Currency     string `yaml:"currency"`
	ContactEmail string `yaml:"contact-email"`
}

func Defaults() ShopValues {
	return ShopValues{
		MainFeedSize: 3,
		Currency:     "RUB",
		ContactEmail: "shop@example.com",
	}
}
