package models

// MenuItem is a dish offered by a restaurant. It is fetched from the catalog
// service and never mutated by this client; the price captured when an item
// is added to a cart is the price used for every later computation.
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image"`
	Category     string  `json:"category"`
	RestaurantID string  `json:"restaurantId"`
	IsVeg        bool    `json:"isVeg"`
	Rating       float64 `json:"rating"`
}

type Restaurant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	MinOrder     float64 `json:"minOrder"`
	ImageURL     string  `json:"image"`
	Address      string  `json:"address"`
	IsOpen       bool    `json:"isOpen"`
}
