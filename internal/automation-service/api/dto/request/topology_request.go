package request

type CreateLocationRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateChainRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required"`
	ChainID   string `json:"chain_id"`
	Allowance int    `json:"allowance" binding:"gte=0"`
}

type UpdateChainRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1"`
	Type      *string `json:"type" binding:"omitempty,min=1"`
	ChainID   *string `json:"chain_id"`
	Allowance *int    `json:"allowance" binding:"omitempty,gte=0"`
}
