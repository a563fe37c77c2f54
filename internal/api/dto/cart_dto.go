package dto

type AddCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
}

type RemoveCartItemRequest struct {
	ProductID uint `json:"product_id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
