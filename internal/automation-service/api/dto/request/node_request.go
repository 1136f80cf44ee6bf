package request

type CreateNodeRequest struct {
	HTTPS           bool     `json:"https"`
	ChainID         string   `json:"chain_id" binding:"required"`
	HostID          string   `json:"host_id" binding:"required"`
	Name            string   `json:"name" binding:"required"`
	Port            *int     `json:"port" binding:"required,gte=1,lte=65535"`
	LoadBalancerIDs []string `json:"load_balancer_ids"`
	Automation      bool     `json:"automation"`
	HaProxy         bool     `json:"haproxy"`
	Backend         string   `json:"backend" binding:"required_if=HaProxy true"`
	Frontend        string   `json:"frontend"`
	Server          string   `json:"server" binding:"required_if=HaProxy true"`
	BasicAuth       string   `json:"basic_auth"`
}

type UpdateNodeRequest struct {
	ChainID         *string   `json:"chain_id" binding:"omitempty,min=1"`
	HostID          *string   `json:"host_id" binding:"omitempty,min=1"`
	Name            *string   `json:"name" binding:"omitempty,min=1"`
	URL             *string   `json:"url" binding:"omitempty,url"`
	LoadBalancerIDs *[]string `json:"load_balancer_ids"`
	Port            *int      `json:"port" binding:"omitempty,gte=1,lte=65535"`
	Automation      *bool     `json:"automation"`
	HaProxy         *bool     `json:"haproxy"`
	Backend         *string   `json:"backend"`
	Frontend        *string   `json:"frontend"`
	Server          *string   `json:"server"`
	BasicAuth       *string   `json:"basic_auth"`
}

type NodeImportRow struct {
	HTTPS         bool
	Chain         string `validate:"required"`
	Host          string `validate:"required"`
	Name          string `validate:"required"`
	Port          int    `validate:"gte=1,lte=65535"`
	Automation    bool
	HaProxy       bool
	Backend       string `validate:"required_if=HaProxy true"`
	Frontend      string
	Server        string `validate:"required_if=HaProxy true"`
	LoadBalancers []string
}
