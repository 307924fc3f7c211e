package dto

type ClientDetailsDTO struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type CheckoutDTO struct {
	Client        ClientDetailsDTO `json:"client" binding:"required"`
	PaymentMethod string           `json:"paymentMethod" binding:"required"`
}

type UpdateOrderStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusDTO struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type AssignRiderDTO struct {
	RiderId string `json:"riderId" binding:"required"`
}
