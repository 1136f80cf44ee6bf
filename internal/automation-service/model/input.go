package model

type HostInput struct {
	Name         string
	LocationID   string
	LoadBalancer bool
	IP           string
	FQDN         string
}

type HostCSVInput struct {
	Name         string
	Location     string
	LoadBalancer bool
	IP           string
	FQDN         string
}

// HostUpdate is a partial patch, nil fields are left untouched.
type HostUpdate struct {
	ID           string
	Name         *string
	LocationID   *string
	LoadBalancer *bool
	IP           *string
	FQDN         *string
}

type NodeInput struct {
	HTTPS           bool
	ChainID         string
	HostID          string
	Name            string
	Port            int
	LoadBalancerIDs []string
	Automation      bool
	HaProxy         bool
	Backend         string
	Frontend        string
	Server          string
	BasicAuth       string
}

type NodeCSVInput struct {
	HTTPS         bool
	Chain         string
	Host          string
	Name          string
	Port          int
	Automation    bool
	HaProxy       bool
	Backend       string
	Frontend      string
	Server        string
	LoadBalancers []string
}

// NodeUpdate is a partial patch, nil fields are left untouched.
type NodeUpdate struct {
	ID              string
	ChainID         *string
	HostID          *string
	Name            *string
	URL             *string
	LoadBalancerIDs *[]string
	Port            *int
	Automation      *bool
	HaProxy         *bool
	Backend         *string
	Frontend        *string
	Server          *string
	BasicAuth       *string
}

type ChainInput struct {
	Name      string
	Type      string
	ChainID   string
	Allowance int
}

type ChainUpdate struct {
	ID        string
	Name      *string
	Type      *string
	ChainID   *string
	Allowance *int
}
