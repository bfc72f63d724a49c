package request

// Mobile is optional; when present an SMS confirmation goes out as well.
type PlaceOrderRequest struct {
	Mobile string `json:"mobile,omitempty" validate:"omitempty,min=10,max=16"`
}
