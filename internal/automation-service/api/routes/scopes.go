package routes

const (
	ScopeNodesRead      = "nodes:read"
	ScopeNodesCreate    = "nodes:create"
	ScopeNodesUpdate    = "nodes:update"
	ScopeNodesDelete    = "nodes:delete"
	ScopeRotationUpdate = "rotation:update"
)
