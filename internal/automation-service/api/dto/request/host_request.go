package request

type CreateHostRequest struct {
	Name         string `json:"name" binding:"required"`
	LocationID   string `json:"location_id" binding:"required"`
	LoadBalancer bool   `json:"load_balancer"`
	IP           string `json:"ip" binding:"omitempty,ip"`
	FQDN         string `json:"fqdn" binding:"omitempty,fqdn"`
}

type UpdateHostRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1"`
	LocationID   *string `json:"location_id" binding:"omitempty,min=1"`
	LoadBalancer *bool   `json:"load_balancer"`
	IP           *string `json:"ip" binding:"omitempty,ip"`
	FQDN         *string `json:"fqdn" binding:"omitempty,fqdn"`
}

// HostImportRow is validated with validate tags after being read from an import file.
type HostImportRow struct {
	Name         string `validate:"required"`
	Location     string `validate:"required"`
	LoadBalancer bool
	IP           string `validate:"required_without=FQDN,omitempty,ip"`
	FQDN         string `validate:"omitempty,fqdn"`
}
