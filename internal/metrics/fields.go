package metrics

// Attribute keys shared between instruments.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrView      = "view"
	AttrFormation = "formation"
)
