package schema

type Price struct {
	MinimumSellingPrice *float64     `json:"minimumSellingPrice"`
	Currency            string       `json:"currency"`
	Net                 float64      `json:"net"`
	SellingPrice        RoundedFloat `json:"selling_price"`
	SellingCurrency     string       `json:"selling_currency"`
	Markup              float64      `json:"markup"`
	ExchangeRate        float64      `json:"exchange_rate"`
}

type Offer struct {
	ID                string `json:"id"`
	HotelCodeSupplier string `json:"hotelCodeSupplier"`
	Market            string `json:"market"`
	Price             Price  `json:"price"`
}

// Offers is the success envelope.
type Offers []Offer
