package pricing

import (
	"bitbucket.org/crgw/hotel-avail/internal/schema"
	"golang.org/x/text/currency"
)

const (
	OfferID           = "A#1"
	HotelCodeSupplier = "39971881"
	NetPrice          = 132.42
	Markup            = 3.2
)

var HotelPriceCurrency = currency.USD

// SimulateOffer prices the fixed mock hotel in the requested currency.
func SimulateOffer(requestCurrency currency.Unit, market string) schema.Offer {
	baseSellingPrice := NetPrice * (1 + Markup/100)
	sellingPrice, exchangeRate := Convert(HotelPriceCurrency, requestCurrency, baseSellingPrice)

	return schema.Offer{
		ID:                OfferID,
		HotelCodeSupplier: HotelCodeSupplier,
		Market:            market,
		Price: schema.Price{
			MinimumSellingPrice: nil,
			Currency:            HotelPriceCurrency.String(),
			Net:                 NetPrice,
			SellingPrice:        schema.Round2(sellingPrice),
			SellingCurrency:     requestCurrency.String(),
			Markup:              Markup,
			ExchangeRate:        exchangeRate,
		},
	}
}
