package models

// PaymentMethod selects how a checkout is paid.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "CARD"
	PaymentWallet         PaymentMethod = "WALLET"
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

// DeliveryInfo is the delivery block of a checkout submission.
type DeliveryInfo struct {
	CustomerName         string `json:"customerName"`
	CustomerPhone        string `json:"customerPhone"`
	DeliveryAddress      string `json:"deliveryAddress"`
	DeliveryCity         string `json:"deliveryCity"`
	DeliveryState        string `json:"deliveryState"`
	DeliveryZip          string `json:"deliveryZip"`
	DeliveryInstructions string `json:"deliveryInstructions"`
}

// PaymentInfo is the payment block of a checkout submission. Card fields are
// present only when Method is CARD; for every other method they must be nil.
type PaymentInfo struct {
	Method     PaymentMethod `json:"paymentMethod"`
	CardNumber *string       `json:"cardNumber"`
	Expiry     *string       `json:"expiry"`
	CVV        *string       `json:"cvv"`
}

// DraftItem is one order line in the wire representation the order service
// expects: numeric menu item id plus quantity.
type DraftItem struct {
	MenuItemID int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

// OrderDraft is the checkout payload. It is built once per submission as a
// value snapshot of the cart, sent, and then discarded whatever the outcome.
type OrderDraft struct {
	RestaurantID int64        `json:"restaurantId"`
	Items        []DraftItem  `json:"items"`
	Delivery     DeliveryInfo `json:"delivery"`
	Payment      PaymentInfo  `json:"payment"`
}

// Validate checks the required delivery fields.
func (d *DeliveryInfo) Validate() error {
	switch {
	case d.CustomerName == "":
		return NewValidationError("customer name is required")
	case d.CustomerPhone == "":
		return NewValidationError("phone number is required")
	case d.DeliveryAddress == "":
		return NewValidationError("delivery address is required")
	case d.DeliveryCity == "":
		return NewValidationError("city is required")
	case d.DeliveryState == "":
		return NewValidationError("state is required")
	case d.DeliveryZip == "":
		return NewValidationError("zip code is required")
	}
	return nil
}

// Validate checks the payment method and, for card payments, the card
// fields. For the other methods card fields are stripped by Normalize rather
// than rejected.
func (p *PaymentInfo) Validate() error {
	switch p.Method {
	case PaymentCard:
		if p.CardNumber == nil || *p.CardNumber == "" {
			return NewValidationError("card number is required")
		}
		if p.Expiry == nil || *p.Expiry == "" {
			return NewValidationError("card expiry is required")
		}
		if p.CVV == nil || *p.CVV == "" {
			return NewValidationError("card cvv is required")
		}
	case PaymentWallet, PaymentCashOnDelivery:
	default:
		return NewValidationError("unsupported payment method %q", string(p.Method))
	}
	return nil
}

// Normalize strips card fields for non-card methods so they never reach the
// wire.
func (p *PaymentInfo) Normalize() {
	if p.Method != PaymentCard {
		p.CardNumber = nil
		p.Expiry = nil
		p.CVV = nil
	}
}
