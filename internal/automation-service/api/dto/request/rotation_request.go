package request

type CheckHaProxyRequest struct {
	Backend         string   `json:"backend" binding:"required"`
	Server          string   `json:"server" binding:"required"`
	LoadBalancerIDs []string `json:"load_balancer_ids" binding:"required,min=1"`
}

type ReportRequest struct {
	Email string `json:"email" binding:"required,email"`
}
